package domain

import (
	"fmt"
	"strings"
)

// StorageScheme は Cloud Storage の URI プレフィックスです。
const StorageScheme = "gs://"

// StorageLocation は Cloud Storage 上のオブジェクトを指します。
type StorageLocation struct {
	Bucket string
	Object string
}

// String は "gs://bucket/object" 形式の URI を返します。
func (l StorageLocation) String() string {
	return StorageScheme + l.Bucket + "/" + l.Object
}

// ParseStorageLocation は "gs://bucket/path" をバケット名とオブジェクトキーに分解します。
// オブジェクトキーの先頭の区切り文字は取り除かれます。
func ParseStorageLocation(uri string) (StorageLocation, error) {
	if !strings.HasPrefix(uri, StorageScheme) {
		return StorageLocation{}, fmt.Errorf("%w: missing %s prefix: %q", ErrMalformedLocation, StorageScheme, uri)
	}

	rest := strings.TrimPrefix(uri, StorageScheme)
	bucket, object, _ := strings.Cut(rest, "/")
	if bucket == "" {
		return StorageLocation{}, fmt.Errorf("%w: empty bucket: %q", ErrMalformedLocation, uri)
	}

	return StorageLocation{
		Bucket: bucket,
		Object: strings.TrimLeft(object, "/"),
	}, nil
}

// HasStorageScheme は値が gs:// で始まるかを返します。
func HasStorageScheme(uri string) bool {
	return strings.HasPrefix(uri, StorageScheme)
}
