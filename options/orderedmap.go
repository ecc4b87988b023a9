package options

import (
	"bufio"
	"io"
	"strconv"
	"strings"

	properties "github.com/arduino/go-properties-orderedmap"
)

// OrderedMapProvider is a reference Provider backed by an ordered
// key/value store, grounded in handler/properties.go's `key = value`
// reader and `{name}` recursive expansion, generalized into typed
// accessors and backed by github.com/arduino/go-properties-orderedmap for
// deterministic iteration order.
type OrderedMapProvider struct {
	props *properties.Map
}

// NewOrderedMapProvider builds a provider seeded with Defaults(), then
// overridden by any values already present in seed (seed may be nil).
func NewOrderedMapProvider(seed map[string]string) *OrderedMapProvider {
	p := properties.NewMap()
	for k, v := range Defaults() {
		p.Set(k, v)
	}
	for k, v := range seed {
		p.Set(k, v)
	}
	return &OrderedMapProvider{props: p}
}

// ReadProperties parses an uncrustify-style "name = value" config stream
// (one option per line, '#' comments, blank lines ignored) into a fresh
// OrderedMapProvider seeded with Defaults(). This is the direct
// generalization of handler/properties.go's readProperties/expandProperty
// pair: '=' splits key/value, and "{other_name}" inside a value is expanded
// recursively before storage.
func ReadProperties(r io.Reader) (*OrderedMapProvider, error) {
	raw := map[string]string{}
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		eq := strings.Index(line, "=")
		if eq < 0 {
			continue
		}
		key := strings.TrimSpace(line[:eq])
		if key == "" {
			continue
		}
		raw[key] = strings.TrimSpace(line[eq+1:])
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	expanded := make(map[string]string, len(raw))
	for k := range raw {
		expanded[k] = expandProperty(raw, k, map[string]bool{})
	}
	return NewOrderedMapProvider(expanded), nil
}

func expandProperty(raw map[string]string, name string, seen map[string]bool) string {
	if seen[name] {
		return raw[name]
	}
	seen[name] = true
	value := raw[name]
	varStart := strings.Index(value, "{")
	for varStart >= 0 {
		varEnd := strings.Index(value[varStart:], "}")
		if varEnd < 0 {
			break
		}
		referenced := value[varStart+1 : varStart+varEnd]
		expanded := expandProperty(raw, referenced, seen)
		value = value[:varStart] + expanded + value[varStart+varEnd+1:]
		varStart = strings.Index(value, "{")
	}
	return value
}

// Set overrides a single option; useful for tests that tweak one knob on
// top of the defaults.
func (p *OrderedMapProvider) Set(name, value string) {
	p.props.Set(name, value)
}

func (p *OrderedMapProvider) Bool(name string) bool {
	v, _ := strconv.ParseBool(p.props.Get(name))
	return v
}

func (p *OrderedMapProvider) IARF(name string) IARF {
	return ParseIARF(p.props.Get(name))
}

func (p *OrderedMapProvider) Unsigned(name string) uint {
	v, _ := strconv.ParseUint(p.props.Get(name), 10, 64)
	return uint(v)
}

func (p *OrderedMapProvider) Signed(name string) int {
	v, _ := strconv.ParseInt(p.props.Get(name), 10, 64)
	return int(v)
}

func (p *OrderedMapProvider) String(name string) string {
	return p.props.Get(name)
}

func (p *OrderedMapProvider) LineEnding(name string) LineEnding {
	switch p.props.Get(name) {
	case "lf":
		return LELF
	case "crlf":
		return LECRLF
	case "cr":
		return LECR
	default:
		return LEAuto
	}
}

func (p *OrderedMapProvider) Position(name string) PositionBitmask {
	switch p.props.Get(name) {
	case "column1":
		return PosColumn1
	case "follow_prev":
		return PosFollowPrev
	case "align_next":
		return PosAlignNext
	default:
		return PosIgnore
	}
}

// Keys returns every option name currently set, in deterministic insertion
// order (exercising the ordered-map dependency's reason for being chosen
// over a plain map).
func (p *OrderedMapProvider) Keys() []string {
	return p.props.Keys()
}
