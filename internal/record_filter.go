package internal

import (
	"fmt"
	"strings"

	"github.com/aykanferhat/go-kafka-consumer-factory/pkg/csmap"
)

const (
	StringSearchFilter = "string-search"
	KeyEqualsFilter    = "key-equals"
)

// RecordFilter decides whether a consumed record is returned to the caller.
// Configure is called once before any IncludeRecord call.
type RecordFilter interface {
	Configure(options map[string]string) error
	IncludeRecord(topic string, partition int32, offset int64, key, value any) bool
	Close()
}

type RecordFilterFactory func() RecordFilter

// FilterDefinition binds a filter factory to the options its instances are
// configured with. Every consumer creates its own instances.
type FilterDefinition struct {
	Factory RecordFilterFactory
	Options map[string]string
	Name    string
}

var recordFilters = csmap.Create[string, RecordFilterFactory](4)

func init() {
	RegisterRecordFilter(StringSearchFilter, func() RecordFilter { return &stringSearchFilter{} })
	RegisterRecordFilter(KeyEqualsFilter, func() RecordFilter { return &keyEqualsFilter{} })
}

func RegisterRecordFilter(name string, factory RecordFilterFactory) {
	recordFilters.Store(strings.ToLower(name), factory)
}

func NewFilterDefinition(name string, options map[string]string) (*FilterDefinition, error) {
	factory, exists := recordFilters.Load(strings.ToLower(name))
	if !exists {
		return nil, NewErrWithArgs("record filter not found: %s", name)
	}
	if options == nil {
		options = make(map[string]string)
	}
	return &FilterDefinition{
		Name:    name,
		Factory: factory,
		Options: options,
	}, nil
}

type stringSearchFilter struct {
	search string
}

func (f *stringSearchFilter) Configure(options map[string]string) error {
	search, exists := options["search"]
	if !exists || len(search) == 0 {
		return NewErrWithArgs("record filter '%s' requires option 'search'", StringSearchFilter)
	}
	f.search = search
	return nil
}

func (f *stringSearchFilter) IncludeRecord(_ string, _ int32, _ int64, _, value any) bool {
	if value == nil {
		return false
	}
	return strings.Contains(toString(value), f.search)
}

func (f *stringSearchFilter) Close() {}

type keyEqualsFilter struct {
	key string
}

func (f *keyEqualsFilter) Configure(options map[string]string) error {
	key, exists := options["key"]
	if !exists {
		return NewErrWithArgs("record filter '%s' requires option 'key'", KeyEqualsFilter)
	}
	f.key = key
	return nil
}

func (f *keyEqualsFilter) IncludeRecord(_ string, _ int32, _ int64, key, _ any) bool {
	if key == nil {
		return false
	}
	return toString(key) == f.key
}

func (f *keyEqualsFilter) Close() {}

func toString(v any) string {
	switch t := v.(type) {
	case string:
		return t
	case []byte:
		return string(t)
	default:
		return fmt.Sprint(t)
	}
}
