package content

import _ "embed"

//go:embed embedded/addon.yaml
var exampleDeclaration []byte

// ExampleFileName is the declaration file `woah init` writes.
const ExampleFileName = "addon.yaml"

// ExampleDeclaration returns a commented starter declaration file.
func ExampleDeclaration() string {
	return string(exampleDeclaration)
}
