package keys

import (
	"crypto/md5"
	"fmt"
	"strings"
)

const (
	// PfxRegistry is used for prefixing access registry cache keys
	PfxRegistry = "registry"
	// PfxRoyalty is used for prefixing royalty lookup cache keys
	PfxRoyalty = "royalty"
	// PfxHealthCheck is used for prefixing health check keys
	PfxHealthCheck = "healthcheck"
)

// MD5 hashes the data with md5
func MD5(data string) string {
	return fmt.Sprintf("%x", md5.Sum([]byte(data)))
}

// CustomKey is used to join the customized key by components with specified delimiter
func CustomKey(delimiter string, components ...string) string {
	return strings.Join(components, delimiter)
}

// RedisKey is used to join the cache key by components
func RedisKey(components ...string) string {
	return CustomKey(":", components...)
}

// GetPrefix extracts the prefix of a key.
func GetPrefix(key string) string {
	s := strings.Split(key, ":")
	if len(s) > 2 {
		return strings.Join([]string{s[0], s[1]}, ":")
	} else if len(s) > 1 {
		return s[0]
	}
	return ""
}
