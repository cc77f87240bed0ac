package compiler

import (
	"bytes"

	"github.com/adrg/frontmatter"
	"gopkg.in/yaml.v3"
)

// frontMatter is the optional YAML header of a source document.
type frontMatter struct {
	Title     string            `yaml:"title"`
	Variables map[string]string `yaml:"variables"`
}

var yamlFormat = frontmatter.NewFormat("---", "---", yaml.Unmarshal)

// splitFrontMatter separates a leading front matter block from the body.
// A leading "---" that does not open a YAML mapping of the expected shape is
// an ordinary rule line: the source is returned untouched.
func splitFrontMatter(source []byte) (frontMatter, []byte) {
	if !bytes.HasPrefix(source, []byte("---")) {
		return frontMatter{}, source
	}

	var node yaml.Node
	body, err := frontmatter.Parse(bytes.NewReader(source), &node, yamlFormat)
	if err != nil || len(node.Content) == 0 || node.Content[0].Kind != yaml.MappingNode {
		return frontMatter{}, source
	}

	var meta frontMatter
	if err := node.Content[0].Decode(&meta); err != nil {
		return frontMatter{}, source
	}
	return meta, body
}
