package token

// Kind represents the category of a source token.
type Kind uint8

const (
	// Invalid indicates an erroneous token.
	Invalid Kind = iota
	// EOF marks the end of the source input.
	EOF

	// Ident represents an identifier; dots are part of identifiers (shared.Foo).
	Ident
	// Literal is a single- or double-quoted string.
	Literal
	// IntLit is a decimal integer, optionally signed.
	IntLit
	// HexLit is a 0x-prefixed integer.
	HexLit
	// DoubleLit is a floating point constant.
	DoubleLit

	keywordBegin
	KwInclude      // include
	KwCppInclude   // cpp_include
	KwNamespace    // namespace
	KwCppNamespace // cpp_namespace
	KwPhpNamespace // php_namespace
	KwConst        // const
	KwTypedef      // typedef
	KwEnum         // enum
	KwSenum        // senum
	KwStruct       // struct
	KwUnion        // union
	KwException    // exception
	KwService      // service
	KwExtends      // extends
	KwRequired     // required
	KwOptional     // optional
	KwOneway       // oneway
	KwAsync        // async
	KwVoid         // void
	KwThrows       // throws
	KwMap          // map
	KwSet          // set
	KwList         // list
	KwCppType      // cpp_type

	baseTypeBegin
	KwBool   // bool
	KwByte   // byte
	KwI8     // i8
	KwI16    // i16
	KwI32    // i32
	KwI64    // i64
	KwDouble // double
	KwString // string
	KwBinary // binary
	KwUUID   // uuid
	KwSlist  // slist
	baseTypeEnd
	keywordEnd

	LBrace    // {
	RBrace    // }
	LParen    // (
	RParen    // )
	LBracket  // [
	RBracket  // ]
	Lt        // <
	Gt        // >
	Comma     // ,
	Semicolon // ;
	Colon     // :
	Assign    // =
	Star      // *

	// LineComment is a // or # comment running to the end of the line.
	LineComment
	// BlockComment is a /* ... */ comment.
	BlockComment
)

var kindNames = [...]string{
	Invalid:        "Invalid",
	EOF:            "EOF",
	Ident:          "Ident",
	Literal:        "Literal",
	IntLit:         "IntLit",
	HexLit:         "HexLit",
	DoubleLit:      "DoubleLit",
	keywordBegin:   "keywordBegin",
	KwInclude:      "KwInclude",
	KwCppInclude:   "KwCppInclude",
	KwNamespace:    "KwNamespace",
	KwCppNamespace: "KwCppNamespace",
	KwPhpNamespace: "KwPhpNamespace",
	KwConst:        "KwConst",
	KwTypedef:      "KwTypedef",
	KwEnum:         "KwEnum",
	KwSenum:        "KwSenum",
	KwStruct:       "KwStruct",
	KwUnion:        "KwUnion",
	KwException:    "KwException",
	KwService:      "KwService",
	KwExtends:      "KwExtends",
	KwRequired:     "KwRequired",
	KwOptional:     "KwOptional",
	KwOneway:       "KwOneway",
	KwAsync:        "KwAsync",
	KwVoid:         "KwVoid",
	KwThrows:       "KwThrows",
	KwMap:          "KwMap",
	KwSet:          "KwSet",
	KwList:         "KwList",
	KwCppType:      "KwCppType",
	baseTypeBegin:  "baseTypeBegin",
	KwBool:         "KwBool",
	KwByte:         "KwByte",
	KwI8:           "KwI8",
	KwI16:          "KwI16",
	KwI32:          "KwI32",
	KwI64:          "KwI64",
	KwDouble:       "KwDouble",
	KwString:       "KwString",
	KwBinary:       "KwBinary",
	KwUUID:         "KwUUID",
	KwSlist:        "KwSlist",
	baseTypeEnd:    "baseTypeEnd",
	keywordEnd:     "keywordEnd",
	LBrace:         "LBrace",
	RBrace:         "RBrace",
	LParen:         "LParen",
	RParen:         "RParen",
	LBracket:       "LBracket",
	RBracket:       "RBracket",
	Lt:             "Lt",
	Gt:             "Gt",
	Comma:          "Comma",
	Semicolon:      "Semicolon",
	Colon:          "Colon",
	Assign:         "Assign",
	Star:           "Star",
	LineComment:    "LineComment",
	BlockComment:   "BlockComment",
}

func (k Kind) String() string {
	if int(k) < len(kindNames) && kindNames[k] != "" {
		return kindNames[k]
	}
	return "Kind(?)"
}
