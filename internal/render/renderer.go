// Package render substitutes placeholder maps into the required template
// set and produces the fixed artifact list.
package render

import (
	"fmt"
	"io/fs"
	"path"
	"strings"
)

// Artifact is one rendered output document. Immutable once produced.
type Artifact struct {
	RelativePath string
	Content      string
}

// artifactDef binds a template name to its layer directory and file name
// pattern (%s is the entity name).
type artifactDef struct {
	template string
	layer    string
	file     string
}

// The artifact set is fixed: field count changes each artifact's content,
// never this list.
var artifactSet = []artifactDef{
	{"DomainModel.java.tpl", "domain/model", "%s.java"},
	{"DomainRepository.java.tpl", "domain/repository", "%sRepository.java"},
	{"DomainService.java.tpl", "domain/service", "%sService.java"},
	{"JpaEntity.java.tpl", "infrastructure/persistence", "%sEntity.java"},
	{"SpringDataRepository.java.tpl", "infrastructure/persistence", "%sJpaRepository.java"},
	{"PersistenceAdapter.java.tpl", "infrastructure/persistence", "%sRepositoryAdapter.java"},
	{"CreateService.java.tpl", "application/service", "Create%sService.java"},
	{"GetService.java.tpl", "application/service", "Get%sService.java"},
	{"UpdateService.java.tpl", "application/service", "Update%sService.java"},
	{"DeleteService.java.tpl", "application/service", "Delete%sService.java"},
	{"ListService.java.tpl", "application/service", "List%sService.java"},
	{"DtoRequest.java.tpl", "presentation/dto", "%sRequest.java"},
	{"DtoResponse.java.tpl", "presentation/dto", "%sResponse.java"},
	{"Controller.java.tpl", "presentation/rest", "%sController.java"},
	{"NotFoundException.java.tpl", "application/exception", "%sNotFoundException.java"},
	{"ExistException.java.tpl", "application/exception", "%sExistException.java"},
	{"EntityExceptionHandler.java.tpl", "presentation/rest", "%sExceptionHandler.java"},
}

// RequiredTemplates returns the template names every source must provide.
func RequiredTemplates() []string {
	names := make([]string, len(artifactSet))
	for i, def := range artifactSet {
		names[i] = def.template
	}
	return names
}

// Renderer loads templates from a source filesystem: the embedded default
// set, or os.DirFS over a user-supplied directory.
type Renderer struct {
	source fs.FS
}

// New creates a renderer over the given template source.
func New(source fs.FS) *Renderer {
	return &Renderer{source: source}
}

// RenderAll renders the complete artifact set. All required templates are
// checked up front; if any are missing the whole run aborts with a
// MissingTemplatesError listing every absent name. Rendering is fully
// in-memory, so a failed run never leaves a partial artifact set behind.
func (r *Renderer) RenderAll(ph map[string]string) ([]Artifact, error) {
	contents := make(map[string]string, len(artifactSet))
	var missing []string
	for _, def := range artifactSet {
		data, err := fs.ReadFile(r.source, def.template)
		if err != nil {
			missing = append(missing, def.template)
			continue
		}
		contents[def.template] = string(data)
	}
	if len(missing) > 0 {
		return nil, &MissingTemplatesError{Names: missing}
	}

	entity := ph["Entity"]
	pkgPath := ph["Package"]
	artifacts := make([]Artifact, 0, len(artifactSet))
	for _, def := range artifactSet {
		rendered, err := substitute(contents[def.template], ph)
		if err != nil {
			return nil, &RenderError{Template: def.template, Err: err}
		}
		artifacts = append(artifacts, Artifact{
			RelativePath: path.Join("src/main/java", pkgPath, def.layer, fmt.Sprintf(def.file, entity)),
			Content:      strings.TrimRight(rendered, " \t\n") + "\n",
		})
	}
	return artifacts, nil
}

// substitute performs single-pass placeholder substitution. Tokens are
// $key or ${key}; $$ emits a literal dollar sign. Unknown keys pass
// through verbatim so template sets may reference keys selectively;
// substituted values are never re-scanned. A dollar sign that starts no
// valid token (bare trailing $, empty or unterminated braces) is a
// malformed marker and fails the render.
func substitute(text string, ph map[string]string) (string, error) {
	var out strings.Builder
	out.Grow(len(text))

	for i := 0; i < len(text); {
		c := text[i]
		if c != '$' {
			out.WriteByte(c)
			i++
			continue
		}
		if i+1 >= len(text) {
			return "", fmt.Errorf("trailing %q at end of template", "$")
		}
		switch next := text[i+1]; {
		case next == '$':
			out.WriteByte('$')
			i += 2
		case next == '{':
			end := strings.IndexByte(text[i+2:], '}')
			if end < 0 {
				return "", fmt.Errorf("unterminated ${ at offset %d", i)
			}
			key := text[i+2 : i+2+end]
			if !validKey(key) {
				return "", fmt.Errorf("malformed placeholder %q at offset %d", text[i:i+2+end+1], i)
			}
			if v, ok := ph[key]; ok {
				out.WriteString(v)
			} else {
				out.WriteString(text[i : i+2+end+1])
			}
			i += 2 + end + 1
		case isKeyStart(next):
			j := i + 1
			for j < len(text) && isKeyByte(text[j]) {
				j++
			}
			key := text[i+1 : j]
			if v, ok := ph[key]; ok {
				out.WriteString(v)
			} else {
				out.WriteString(text[i:j])
			}
			i = j
		default:
			return "", fmt.Errorf("malformed placeholder marker at offset %d", i)
		}
	}

	return out.String(), nil
}

func validKey(key string) bool {
	if key == "" || !isKeyStart(key[0]) {
		return false
	}
	for i := 1; i < len(key); i++ {
		if !isKeyByte(key[i]) {
			return false
		}
	}
	return true
}

func isKeyStart(c byte) bool {
	return c == '_' || ('a' <= c && c <= 'z') || ('A' <= c && c <= 'Z')
}

func isKeyByte(c byte) bool {
	return isKeyStart(c) || ('0' <= c && c <= '9')
}
