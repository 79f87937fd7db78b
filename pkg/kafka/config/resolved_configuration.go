package config

import (
	"strconv"
	"strings"
)

// ResolvedConfiguration is the flat key/value configuration handed to a
// consumer constructor.
type ResolvedConfiguration map[string]any

func (r ResolvedConfiguration) Has(key string) bool {
	_, exists := r[key]
	return exists
}

func (r ResolvedConfiguration) GetString(key string) string {
	v, _ := r[key].(string)
	return v
}

func (r ResolvedConfiguration) GetBool(key string) bool {
	switch v := r[key].(type) {
	case bool:
		return v
	case string:
		b, _ := strconv.ParseBool(v)
		return b
	default:
		return false
	}
}

func (r ResolvedConfiguration) GetInt(key string) int {
	switch v := r[key].(type) {
	case int:
		return v
	case int32:
		return int(v)
	case int64:
		return int(v)
	case string:
		i, _ := strconv.Atoi(v)
		return i
	default:
		return 0
	}
}

func (r ResolvedConfiguration) GetBrokers() []string {
	return splitAndTrim(r.GetString(BootstrapServersConfig))
}

func (r ResolvedConfiguration) GetInterceptorNames() []string {
	return splitAndTrim(r.GetString(InterceptorClassesConfig))
}

func splitAndTrim(value string) []string {
	if len(value) == 0 {
		return nil
	}
	return strings.Split(strings.ReplaceAll(value, " ", ""), ",")
}
