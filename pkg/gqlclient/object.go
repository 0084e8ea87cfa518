package gqlclient

// Object is a read-only view over a decoded response mapping. It replaces
// dynamic attribute access with explicit lookups and keeps an escape hatch
// back to the plain map.
type Object struct {
	data map[string]interface{}
}

func NewObject(data map[string]interface{}) Object {
	return Object{data: data}
}

func (o Object) Get(key string) (interface{}, bool) {
	value, ok := o.data[key]
	return value, ok
}

// GetDefault returns the value under key, or def when the key is absent.
func (o Object) GetDefault(key string, def interface{}) interface{} {
	if value, ok := o.data[key]; ok {
		return value
	}
	return def
}

func (o Object) GetString(key string) string {
	s, _ := o.data[key].(string)
	return s
}

// ToMap returns the underlying mapping.
func (o Object) ToMap() map[string]interface{} {
	return o.data
}
