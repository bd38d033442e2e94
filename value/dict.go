/*
File   : cloudy/value/dict.go
Package: value
*/
package value

import (
	"strconv"
	"strings"

	"github.com/nandu-not-bot/cloudy/cerr"
	"github.com/nandu-not-bot/cloudy/lexer"
)

// Dict is Cloudy's mutable, insertion-ordered string-keyed map. Keys
// and Pairs are pointers for the same sharing reason as List.Elements:
// a Copy shares the same backing storage, so mutation through any
// wrapper is visible to every other holder.
type Dict struct {
	base
	Keys  *[]string
	Pairs *map[string]Value
}

func NewDict() *Dict {
	keys := []string{}
	pairs := map[string]Value{}
	return &Dict{Keys: &keys, Pairs: &pairs}
}

func (d *Dict) Type() string { return TypeDict }

func (d *Dict) String() string {
	parts := make([]string, 0, len(*d.Keys))
	for _, k := range *d.Keys {
		parts = append(parts, strconv.Quote(k)+": "+reprOf((*d.Pairs)[k]))
	}
	return "{" + strings.Join(parts, ", ") + "}"
}

func (d *Dict) IsTrue() bool { return len(*d.Keys) > 0 }

func (d *Dict) Copy() Value {
	cp := &Dict{Keys: d.Keys, Pairs: d.Pairs}
	cp.posStart, cp.posEnd, cp.context = d.posStart, d.posEnd, d.context
	return cp
}

func (d *Dict) SetPos(start, end *lexer.Position) Value { d.setPos(start, end); return d }
func (d *Dict) SetContext(ctx *Context) Value            { d.setContext(ctx); return d }

// Get looks up key, erroring with the language's documented
// "Key '<k>' not found" message if absent.
func (d *Dict) Get(key string) (Value, *cerr.Error) {
	v, ok := (*d.Pairs)[key]
	if !ok {
		return nil, cerr.New(cerr.Runtime, d.posStart, d.posEnd, "Key '"+key+"' not found")
	}
	return v, nil
}

// Set inserts or updates key, appending it to the insertion-order Keys
// slice only the first time it is seen.
func (d *Dict) Set(key string, v Value) {
	if _, exists := (*d.Pairs)[key]; !exists {
		*d.Keys = append(*d.Keys, key)
	}
	(*d.Pairs)[key] = v
}

// Delete removes key, erroring the same way Get does if it is absent.
func (d *Dict) Delete(key string) *cerr.Error {
	if _, ok := (*d.Pairs)[key]; !ok {
		return cerr.New(cerr.Runtime, d.posStart, d.posEnd, "Key '"+key+"' not found")
	}
	delete(*d.Pairs, key)
	for i, k := range *d.Keys {
		if k == key {
			*d.Keys = append((*d.Keys)[:i], (*d.Keys)[i+1:]...)
			break
		}
	}
	return nil
}

func (d *Dict) Len() int { return len(*d.Keys) }

// Contains implements the `in` membership test: key presence.
func (d *Dict) Contains(key string) Value {
	_, ok := (*d.Pairs)[key]
	return NewBool(ok)
}

func (d *Dict) Eq(other Value) Value {
	od, ok := other.(*Dict)
	if !ok || len(*d.Keys) != len(*od.Keys) {
		return NewBool(false)
	}
	for _, k := range *d.Keys {
		ov, ok := (*od.Pairs)[k]
		if !ok {
			return NewBool(false)
		}
		v := (*d.Pairs)[k]
		eq, ok := v.(interface{ Eq(Value) Value })
		if !ok {
			return NewBool(false)
		}
		b, ok := eq.Eq(ov).(*Bool)
		if !ok || !b.Val {
			return NewBool(false)
		}
	}
	return NewBool(true)
}

func (d *Dict) Ne(other Value) Value {
	eq := d.Eq(other).(*Bool)
	return NewBool(!eq.Val)
}
