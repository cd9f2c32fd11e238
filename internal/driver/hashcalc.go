package driver

import (
	"crypto/sha256"

	"thriftfmt/internal/format"
	"thriftfmt/internal/project"
	"thriftfmt/internal/version"
)

// optionsDigest: H(fingerprint опций + версия форматтера). Новая версия
// может печатать иначе, поэтому старые записи кэша ей не подходят.
func optionsDigest(opts format.Options) project.Digest {
	return project.StringDigest(opts.Fingerprint() + "@" + version.Version)
}

// cacheKey: H(H(raw bytes) || options digest). Хешируем байты как на диске,
// а не нормализованные, иначе CRLF-файл считался бы отформатированным.
func cacheKey(raw []byte, opts project.Digest) project.Digest {
	return project.Combine(sha256.Sum256(raw), opts)
}
