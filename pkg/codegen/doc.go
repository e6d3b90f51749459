// Package codegen provides a fluent builder for Rust source code.
//
// Callers assemble a tree of declarations on a Scope (structs, enums,
// traits, impl blocks, functions, constants, type aliases, and nested
// modules), register imports as they go, and render the whole tree to
// formatted text in one pass:
//
//	scope := codegen.NewScope()
//	scope.Import("std::collections", "HashMap")
//	scope.NewStruct("Config").Vis("pub").
//		Field("values", codegen.NewType("HashMap").
//			WithGeneric(codegen.NewType("String"), codegen.NewType("String")))
//	fmt.Println(scope.String())
//
// Rendering is deterministic: imports consolidate in first-seen order
// (grouped by visibility, then path) and items render in insertion order,
// so the same tree always produces byte-identical output.
package codegen
