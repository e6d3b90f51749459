package codegen

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRenderDeclarations(t *testing.T) {
	tests := []struct {
		name     string
		build    func(scope *Scope)
		expected string
	}{
		{
			name: "unit struct",
			build: func(scope *Scope) {
				scope.NewStruct("Marker").Vis("pub")
			},
			expected: "pub struct Marker;",
		},
		{
			name: "tuple struct",
			build: func(scope *Scope) {
				scope.NewStruct("Pair").Tuple(NewType("i32")).Tuple(NewType("i32"))
			},
			expected: "struct Pair(i32, i32);",
		},
		{
			name: "struct with derives and documented field",
			build: func(scope *Scope) {
				st := scope.NewStruct("Point").Vis("pub").Derive("Debug").Derive("Clone")
				st.Field("x", NewType("i64")).Vis = "pub"
				field := st.Field("y", NewType("i64"))
				field.Vis = "pub"
				field.Documentation = []string{"Vertical position."}
				field.Annotations = []string{`serde(default)`}
			},
			expected: "#[derive(Debug, Clone)]\n" +
				"pub struct Point {\n" +
				"    pub x: i64,\n" +
				"    /// Vertical position.\n" +
				"    #[serde(default)]\n" +
				"    pub y: i64,\n" +
				"}",
		},
		{
			name: "generic struct",
			build: func(scope *Scope) {
				scope.NewStruct("Wrapper").Generic("T").Field("inner", NewType("T"))
			},
			expected: "struct Wrapper<T> {\n" +
				"    inner: T,\n" +
				"}",
		},
		{
			name: "tuple struct with bound",
			build: func(scope *Scope) {
				scope.NewStruct("Pair").Generic("T").
					Tuple(NewType("T")).Tuple(NewType("T")).
					Bound("T", NewType("Clone"))
			},
			expected: "struct Pair<T>(T, T)\n" +
				"where\n" +
				"    T: Clone,\n" +
				";",
		},
		{
			name: "enum with all variant forms",
			build: func(scope *Scope) {
				e := scope.NewEnum("Shape").Vis("pub").Derive("Debug")
				e.NewVariant("Circle").Tuple(NewType("f64"))
				rect := e.NewVariant("Rect")
				rect.Named("w", NewType("f64"))
				rect.Named("h", NewType("f64"))
				e.NewVariant("Unknown").Doc("Fallback form.")
			},
			expected: "#[derive(Debug)]\n" +
				"pub enum Shape {\n" +
				"    Circle(f64),\n" +
				"    Rect {\n" +
				"        w: f64,\n" +
				"        h: f64,\n" +
				"    },\n" +
				"    /// Fallback form.\n" +
				"    Unknown,\n" +
				"}",
		},
		{
			name: "trait with associated type and methods",
			build: func(scope *Scope) {
				tr := scope.NewTrait("Repository").Vis("pub").Parent(NewType("Send"))
				tr.AssociatedType("Item", NewType("Clone"))
				tr.NewFn("get").SelfArg("&self").Arg("id", NewType("u64")).
					Ret(NewType("Option").WithGeneric(NewType("Self::Item")))
				tr.NewFn("describe").SelfArg("&self").Ret(NewType("String")).
					Line(`String::from("repository")`)
			},
			expected: "pub trait Repository: Send {\n" +
				"    type Item: Clone;\n" +
				"\n" +
				"    fn get(&self, id: u64) -> Option<Self::Item>;\n" +
				"\n" +
				"    fn describe(&self) -> String {\n" +
				"        String::from(\"repository\")\n" +
				"    }\n" +
				"}",
		},
		{
			name: "inherent impl with generics",
			build: func(scope *Scope) {
				im := scope.NewImpl("Stack").Generic("T").TargetGeneric(NewType("T"))
				im.NewFn("push").Vis("pub").SelfArg("&mut self").Arg("value", NewType("T")).
					Line("self.items.push(value);")
			},
			expected: "impl<T> Stack<T> {\n" +
				"    pub fn push(&mut self, value: T) {\n" +
				"        self.items.push(value);\n" +
				"    }\n" +
				"}",
		},
		{
			name: "trait impl with associated const and type",
			build: func(scope *Scope) {
				im := scope.NewImpl("Meters")
				im.ImplTrait(NewType("Unit"))
				im.AssociateConst("SYMBOL", NewType("&'static str"), `"m"`, "")
				im.AssociateType("Base", NewType("Meters"))
				im.NewFn("scale").SelfArg("&self").Ret(NewType("f64")).Line("1.0")
			},
			expected: "impl Unit for Meters {\n" +
				"    const SYMBOL: &'static str = \"m\";\n" +
				"    type Base = Meters;\n" +
				"\n" +
				"    fn scale(&self) -> f64 {\n" +
				"        1.0\n" +
				"    }\n" +
				"}",
		},
		{
			name: "impl with attribute",
			build: func(scope *Scope) {
				im := scope.NewImpl("Client")
				im.Attr("async_trait")
				im.ImplTrait(NewType("Fetch"))
				im.NewFn("fetch").Async().SelfArg("&self").Ret(NewType("Bytes")).
					Line("self.inner.fetch().await")
			},
			expected: "#[async_trait]\n" +
				"impl Fetch for Client {\n" +
				"    async fn fetch(&self) -> Bytes {\n" +
				"        self.inner.fetch().await\n" +
				"    }\n" +
				"}",
		},
		{
			name: "documented const",
			build: func(scope *Scope) {
				scope.NewConst("MAX_DEPTH").Doc("Upper bound on module nesting.").
					Vis("pub").Ty(NewType("usize")).Value("16")
			},
			expected: "/// Upper bound on module nesting.\n" +
				"pub const MAX_DEPTH: usize = 16;",
		},
		{
			name: "type alias with generic target",
			build: func(scope *Scope) {
				target := NewType("std::result::Result").
					WithGeneric(NewType("T"), NewType("Error"))
				scope.NewTypeAlias("Result", target).Vis("pub")
			},
			expected: "pub type Result = std::result::Result<T, Error>;",
		},
		{
			name: "function with attribute and no body",
			build: func(scope *Scope) {
				scope.NewFn("reserved").Attr("allow(dead_code)").Vis("pub(crate)")
			},
			expected: "#[allow(dead_code)]\n" +
				"pub(crate) fn reserved();",
		},
		{
			name: "module with attribute and docs",
			build: func(scope *Scope) {
				m := scope.NewModule("generated").
					Doc("Machine-written, do not edit.").
					Vis("pub").
					Attr("allow(unused_imports)")
				m.NewConst("VERSION").Ty(NewType("&str")).Value(`"1"`)
			},
			expected: "/// Machine-written, do not edit.\n" +
				"#[allow(unused_imports)]\n" +
				"pub mod generated {\n" +
				"    const VERSION: &str = \"1\";\n" +
				"}",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			scope := NewScope()
			tt.build(scope)
			assert.Equal(t, tt.expected, scope.String())
		})
	}
}

func TestStructFieldHandleStaysLiveAcrossAppends(t *testing.T) {
	scope := NewScope()
	st := scope.NewStruct("Config")
	retries := st.Field("retries", NewType("u32"))

	// Enough appends to force the backing slice to reallocate; the handle
	// returned earlier must still reach the rendered field.
	for i := 0; i < 8; i++ {
		st.Field(fmt.Sprintf("extra_%d", i), NewType("u8"))
	}
	retries.Vis = "pub"
	retries.Documentation = []string{"How often to retry."}

	out := scope.String()
	assert.Contains(t, out, "    /// How often to retry.\n    pub retries: u32,")
}

func TestTypeString(t *testing.T) {
	tests := []struct {
		name     string
		ty       Type
		expected string
	}{
		{"plain", NewType("u64"), "u64"},
		{"path", NewType("std::fmt::Display"), "std::fmt::Display"},
		{
			"nested generics",
			NewType("HashMap").WithGeneric(
				NewType("String"),
				NewType("Vec").WithGeneric(NewType("u8")),
			),
			"HashMap<String, Vec<u8>>",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.ty.String())
		})
	}
}

func TestTypeWithGenericDoesNotMutateReceiver(t *testing.T) {
	base := NewType("Vec")
	a := base.WithGeneric(NewType("u8"))
	b := base.WithGeneric(NewType("u16"))

	assert.Equal(t, "Vec", base.String())
	assert.Equal(t, "Vec<u8>", a.String())
	assert.Equal(t, "Vec<u16>", b.String())
}
