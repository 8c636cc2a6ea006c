package specconfig

import "fmt"

// Method is the HTTP verb a RequestSpec drives.
type Method int

const (
	Get Method = iota
	Post
	Put
	Delete
)

var methodNames = map[Method]string{
	Get:    "GET",
	Post:   "POST",
	Put:    "PUT",
	Delete: "DELETE",
}

var methodFromName = map[string]Method{
	"get":    Get,
	"post":   Post,
	"put":    Put,
	"delete": Delete,
}

func (m Method) String() string {
	if name, ok := methodNames[m]; ok {
		return name
	}
	return fmt.Sprintf("Method(%d)", int(m))
}

func (m Method) MarshalText() ([]byte, error) {
	return []byte(m.String()), nil
}

func (m *Method) UnmarshalText(text []byte) error {
	v, ok := methodFromName[lower(string(text))]
	if !ok {
		return fmt.Errorf("specconfig: unrecognized method %q", string(text))
	}
	*m = v
	return nil
}

func lower(s string) string {
	b := []byte(s)
	for i, c := range b {
		if c >= 'A' && c <= 'Z' {
			b[i] = c + ('a' - 'A')
		}
	}
	return string(b)
}
