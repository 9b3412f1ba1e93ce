package enum

import (
	"github.com/gilesknap/notiondata"
)

// Language is a syntax highlighting language accepted by code blocks.
// Unlike Color it has no schema default: a code payload must name one.
type Language string

// The full language set the API accepts for code blocks.
const (
	LanguageABAP         Language = "abap"
	LanguageArduino      Language = "arduino"
	LanguageBash         Language = "bash"
	LanguageBasic        Language = "basic"
	LanguageC            Language = "c"
	LanguageClojure      Language = "clojure"
	LanguageCoffeeScript Language = "coffeescript"
	LanguageCPP          Language = "c++"
	LanguageCSharp       Language = "c#"
	LanguageCSS          Language = "css"
	LanguageDart         Language = "dart"
	LanguageDiff         Language = "diff"
	LanguageDocker       Language = "docker"
	LanguageElixir       Language = "elixir"
	LanguageElm          Language = "elm"
	LanguageErlang       Language = "erlang"
	LanguageFlow         Language = "flow"
	LanguageFortran      Language = "fortran"
	LanguageFSharp       Language = "f#"
	LanguageGherkin      Language = "gherkin"
	LanguageGLSL         Language = "glsl"
	LanguageGo           Language = "go"
	LanguageGraphQL      Language = "graphql"
	LanguageGroovy       Language = "groovy"
	LanguageHaskell      Language = "haskell"
	LanguageHTML         Language = "html"
	LanguageJava         Language = "java"
	LanguageJavaScript   Language = "javascript"
	LanguageJSON         Language = "json"
	LanguageJulia        Language = "julia"
	LanguageKotlin       Language = "kotlin"
	LanguageLaTeX        Language = "latex"
	LanguageLess         Language = "less"
	LanguageLisp         Language = "lisp"
	LanguageLiveScript   Language = "livescript"
	LanguageLua          Language = "lua"
	LanguageMakefile     Language = "makefile"
	LanguageMarkdown     Language = "markdown"
	LanguageMarkup       Language = "markup"
	LanguageMATLAB       Language = "matlab"
	LanguageMermaid      Language = "mermaid"
	LanguageNix          Language = "nix"
	LanguageObjectiveC   Language = "objective-c"
	LanguageOCaml        Language = "ocaml"
	LanguagePascal       Language = "pascal"
	LanguagePerl         Language = "perl"
	LanguagePHP          Language = "php"
	LanguagePlainText    Language = "plain text"
	LanguagePowerShell   Language = "powershell"
	LanguageProlog       Language = "prolog"
	LanguageProtobuf     Language = "protobuf"
	LanguagePython       Language = "python"
	LanguageR            Language = "r"
	LanguageReason       Language = "reason"
	LanguageRuby         Language = "ruby"
	LanguageRust         Language = "rust"
	LanguageSass         Language = "sass"
	LanguageScala        Language = "scala"
	LanguageScheme       Language = "scheme"
	LanguageSCSS         Language = "scss"
	LanguageShell        Language = "shell"
	LanguageSQL          Language = "sql"
	LanguageSwift        Language = "swift"
	LanguageTypeScript   Language = "typescript"
	LanguageVBNet        Language = "vb.net"
	LanguageVerilog      Language = "verilog"
	LanguageVHDL         Language = "vhdl"
	LanguageVisualBasic  Language = "visual basic"
	LanguageWebAssembly  Language = "webassembly"
	LanguageXML          Language = "xml"
	LanguageYAML         Language = "yaml"
	LanguageJavaCFamily  Language = "java/c/c++/c#"
)

var languages = map[Language]struct{}{
	LanguageABAP: {}, LanguageArduino: {}, LanguageBash: {}, LanguageBasic: {},
	LanguageC: {}, LanguageClojure: {}, LanguageCoffeeScript: {},
	LanguageCPP: {}, LanguageCSharp: {}, LanguageCSS: {}, LanguageDart: {},
	LanguageDiff: {}, LanguageDocker: {}, LanguageElixir: {}, LanguageElm: {},
	LanguageErlang: {}, LanguageFlow: {}, LanguageFortran: {},
	LanguageFSharp: {}, LanguageGherkin: {}, LanguageGLSL: {}, LanguageGo: {},
	LanguageGraphQL: {}, LanguageGroovy: {}, LanguageHaskell: {},
	LanguageHTML: {}, LanguageJava: {}, LanguageJavaScript: {},
	LanguageJSON: {}, LanguageJulia: {}, LanguageKotlin: {},
	LanguageLaTeX: {}, LanguageLess: {}, LanguageLisp: {},
	LanguageLiveScript: {}, LanguageLua: {}, LanguageMakefile: {},
	LanguageMarkdown: {}, LanguageMarkup: {}, LanguageMATLAB: {},
	LanguageMermaid: {}, LanguageNix: {}, LanguageObjectiveC: {},
	LanguageOCaml: {}, LanguagePascal: {}, LanguagePerl: {}, LanguagePHP: {},
	LanguagePlainText: {}, LanguagePowerShell: {}, LanguageProlog: {},
	LanguageProtobuf: {}, LanguagePython: {}, LanguageR: {},
	LanguageReason: {}, LanguageRuby: {}, LanguageRust: {}, LanguageSass: {},
	LanguageScala: {}, LanguageScheme: {}, LanguageSCSS: {},
	LanguageShell: {}, LanguageSQL: {}, LanguageSwift: {},
	LanguageTypeScript: {}, LanguageVBNet: {}, LanguageVerilog: {},
	LanguageVHDL: {}, LanguageVisualBasic: {}, LanguageWebAssembly: {},
	LanguageXML: {}, LanguageYAML: {}, LanguageJavaCFamily: {},
}

// Valid reports whether l is one of the languages the API accepts.
func (l Language) Valid() bool {
	_, ok := languages[l]
	return ok
}

// ParseLanguage validates a raw language value found at path. There is no
// default: a nil value fails like any other non-member.
func ParseLanguage(path string, raw any) (Language, error) {
	s, ok := raw.(string)
	if !ok {
		return "", &notiondata.ValidationError{
			Path:    path,
			Value:   raw,
			Message: "language must be a string",
		}
	}
	l := Language(s)
	if !l.Valid() {
		return "", &notiondata.ValidationError{
			Path:    path,
			Value:   s,
			Message: "not a recognized code language",
		}
	}
	return l, nil
}
