package ast

// Kind identifies the grammar production of a node.
type Kind uint8

const (
	KindInvalid Kind = iota
	// Terminal wraps exactly one Leaf.
	Terminal

	Document
	Header
	Definition
	Include
	CppInclude
	Namespace
	Const
	Typedef
	Enum
	EnumField
	Senum
	Struct
	Union
	Exception
	Service
	Field
	FieldID
	FieldReq
	Function
	Oneway
	FunctionType
	ThrowsList
	TypeAnnotations
	TypeAnnotation
	AnnotationValue
	FieldType
	BaseType
	RealBaseType
	ContainerType
	MapType
	SetType
	ListType
	CppType
	ConstValue
	Integer
	ConstList
	ConstMapEntry
	ConstMap
	ListSeparator

	// KindCount is the number of kinds; tables indexed by Kind use it as length.
	KindCount
)

var kindNames = [KindCount]string{
	KindInvalid:     "Invalid",
	Terminal:        "Terminal",
	Document:        "Document",
	Header:          "Header",
	Definition:      "Definition",
	Include:         "Include",
	CppInclude:      "CppInclude",
	Namespace:       "Namespace",
	Const:           "Const",
	Typedef:         "Typedef",
	Enum:            "Enum",
	EnumField:       "EnumField",
	Senum:           "Senum",
	Struct:          "Struct",
	Union:           "Union",
	Exception:       "Exception",
	Service:         "Service",
	Field:           "Field",
	FieldID:         "FieldID",
	FieldReq:        "FieldReq",
	Function:        "Function",
	Oneway:          "Oneway",
	FunctionType:    "FunctionType",
	ThrowsList:      "ThrowsList",
	TypeAnnotations: "TypeAnnotations",
	TypeAnnotation:  "TypeAnnotation",
	AnnotationValue: "AnnotationValue",
	FieldType:       "FieldType",
	BaseType:        "BaseType",
	RealBaseType:    "RealBaseType",
	ContainerType:   "ContainerType",
	MapType:         "MapType",
	SetType:         "SetType",
	ListType:        "ListType",
	CppType:         "CppType",
	ConstValue:      "ConstValue",
	Integer:         "Integer",
	ConstList:       "ConstList",
	ConstMapEntry:   "ConstMapEntry",
	ConstMap:        "ConstMap",
	ListSeparator:   "ListSeparator",
}

func (k Kind) String() string {
	if k < KindCount {
		return kindNames[k]
	}
	return "Kind(?)"
}

// IsBlockDefinition reports whether the kind is a definition with a braced
// body (enum, struct, union, exception, service).
func (k Kind) IsBlockDefinition() bool {
	switch k {
	case Enum, Struct, Union, Exception, Service:
		return true
	default:
		return false
	}
}

// IsWrapper reports whether the kind only wraps a single header or definition.
func (k Kind) IsWrapper() bool {
	return k == Header || k == Definition
}
