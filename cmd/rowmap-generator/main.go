// Command rowmap-generator generates functions that build Go structs from
// database rows.
//
// Each target struct gets a <name>_rowmap.go file next to it holding
// <Name>FromRow and <Name>TryFromRow. Field behaviour is set with `rowmap`
// struct tags (rename, from, try_from) or a YAML mapping file:
//
//	rowmap-generator gen --config rowmap.yaml
//	rowmap-generator gen --package ./models --type Account --type Session
//	rowmap-generator wrap --package ./models --type Account --name AccountPatch
//	rowmap-generator check --config rowmap.yaml
package main

func main() {
	Execute()
}
