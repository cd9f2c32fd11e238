package diag

import (
	"fmt"
)

type Code uint16

const (
	// Неизвестная ошибка
	UnknownCode Code = 0

	// Лексические
	LexInfo                     Code = 1000
	LexUnknownChar              Code = 1001
	LexUnterminatedString       Code = 1002
	LexUnterminatedBlockComment Code = 1003
	LexBadNumber                Code = 1004

	// Парсерные
	SynInfo               Code = 2000
	SynUnexpectedToken    Code = 2001
	SynExpectIdentifier   Code = 2002
	SynExpectType         Code = 2003
	SynExpectConstValue   Code = 2004
	SynUnclosedBrace      Code = 2005
	SynUnclosedParen      Code = 2006
	SynUnclosedAngle      Code = 2007
	SynUnclosedBracket    Code = 2008
	SynUnexpectedTopLevel Code = 2009
	SynExpectLiteral      Code = 2010
	SynHeaderAfterDef     Code = 2011

	// Ошибки I/O
	IOLoadFileError  Code = 4001
	IOWriteFileError Code = 4002

	// Ошибки конфигурации проекта
	ProjInfo          Code = 5000
	ProjConfigInvalid Code = 5001
	ProjBadGlob       Code = 5002

	// Observability
	ObsInfo    Code = 6000
	ObsTimings Code = 6001

	// Форматтер
	FmtInfo           Code = 7000
	FmtDefect         Code = 7001
	FmtNotIdempotent  Code = 7002
	FmtTokensMismatch Code = 7003
	FmtNotFormatted   Code = 7004
)

var codeDescription = map[Code]string{
	UnknownCode:                 "Unknown error",
	LexInfo:                     "Lexical information",
	LexUnknownChar:              "Unknown character",
	LexUnterminatedString:       "Unterminated string literal",
	LexUnterminatedBlockComment: "Unterminated block comment",
	LexBadNumber:                "Malformed number literal",
	SynInfo:                     "Syntax information",
	SynUnexpectedToken:          "Unexpected token",
	SynExpectIdentifier:         "Expected identifier",
	SynExpectType:               "Expected type",
	SynExpectConstValue:         "Expected constant value",
	SynUnclosedBrace:            "Unclosed '{'",
	SynUnclosedParen:            "Unclosed '('",
	SynUnclosedAngle:            "Unclosed '<'",
	SynUnclosedBracket:          "Unclosed '['",
	SynUnexpectedTopLevel:       "Unexpected token at top level",
	SynExpectLiteral:            "Expected string literal",
	SynHeaderAfterDef:           "Header after definition",
	IOLoadFileError:             "I/O load file error",
	IOWriteFileError:            "I/O write file error",
	ProjInfo:                    "Project information",
	ProjConfigInvalid:           "Invalid configuration",
	ProjBadGlob:                 "Invalid glob pattern",
	ObsInfo:                     "Observability information",
	ObsTimings:                  "Pipeline timings",
	FmtInfo:                     "Formatter information",
	FmtDefect:                   "Formatter defect",
	FmtNotIdempotent:            "Formatting is not idempotent",
	FmtTokensMismatch:           "Formatted output changes the token stream",
	FmtNotFormatted:             "File is not formatted",
}

func (c Code) ID() string {
	switch ic := int(c); {
	case ic >= 1000 && ic < 2000:
		return fmt.Sprintf("LEX%04d", ic)
	case ic >= 2000 && ic < 3000:
		return fmt.Sprintf("SYN%04d", ic)
	case ic >= 4000 && ic < 5000:
		return fmt.Sprintf("IO%04d", ic)
	case ic >= 5000 && ic < 6000:
		return fmt.Sprintf("PRJ%04d", ic)
	case ic >= 6000 && ic < 7000:
		return fmt.Sprintf("OBS%04d", ic)
	case ic >= 7000 && ic < 8000:
		return fmt.Sprintf("FMT%04d", ic)
	}
	return "E0000"
}

func (c Code) Title() string {
	desc, ok := codeDescription[c]
	if !ok {
		return codeDescription[UnknownCode]
	}
	return desc
}

func (c Code) String() string {
	return fmt.Sprintf("[%s]: %s", c.ID(), c.Title())
}
