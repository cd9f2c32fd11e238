package token

var keywords = map[string]Kind{
	"include":       KwInclude,
	"cpp_include":   KwCppInclude,
	"namespace":     KwNamespace,
	"cpp_namespace": KwCppNamespace,
	"php_namespace": KwPhpNamespace,
	"const":         KwConst,
	"typedef":       KwTypedef,
	"enum":          KwEnum,
	"senum":         KwSenum,
	"struct":        KwStruct,
	"union":         KwUnion,
	"exception":     KwException,
	"service":       KwService,
	"extends":       KwExtends,
	"required":      KwRequired,
	"optional":      KwOptional,
	"oneway":        KwOneway,
	"async":         KwAsync,
	"void":          KwVoid,
	"throws":        KwThrows,
	"map":           KwMap,
	"set":           KwSet,
	"list":          KwList,
	"cpp_type":      KwCppType,
	"bool":          KwBool,
	"byte":          KwByte,
	"i8":            KwI8,
	"i16":           KwI16,
	"i32":           KwI32,
	"i64":           KwI64,
	"double":        KwDouble,
	"string":        KwString,
	"binary":        KwBinary,
	"uuid":          KwUUID,
	"slist":         KwSlist,
}

// LookupKeyword возвращает тип и bool если это ключевое слово.
// Ключевые слова регистрозависимые — только lowercase версии распознаются.
func LookupKeyword(ident string) (Kind, bool) {
	k, ok := keywords[ident]
	return k, ok
}
