package maybe

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
)

type version struct {
	major, minor int
}

// only compares major versions
func (v version) Equal(o version) bool {
	return v.major == o.major
}

func TestEmptyAndWithValue(t *testing.T) {
	a := assert.New(t)

	var zero Maybe[int]
	a.Equal(Empty[int](), zero)
	a.False(zero.HasValue())
	a.Equal(0, zero.Value())

	m := WithValue(0)
	a.True(m.HasValue())
	a.Equal(0, m.Value())
	a.False(m.Equal(Empty[int]()))

	var p *int
	a.True(WithValue(p).HasValue())
}

func TestOf(t *testing.T) {
	a := assert.New(t)

	a.Equal(Empty[*int](), Of[*int](nil))
	a.Equal(Empty[[]string](), Of[[]string](nil))
	a.Equal(Empty[map[string]int](), Of[map[string]int](nil))
	a.Equal(Empty[error](), Of[error](nil))
	a.Equal(Empty[any](), Of[any](nil))

	x := 5
	m := Of(&x)
	a.True(m.HasValue())
	a.Same(&x, m.Value())

	s := Of("value")
	a.True(s.HasValue())
	a.Equal("value", s.Value())

	// zero values of non-nillable types are values
	a.True(Of(0).HasValue())
	a.True(Of("").HasValue())
}

func TestGetAndOrElse(t *testing.T) {
	a := assert.New(t)

	v, ok := WithValue("x").Get()
	a.True(ok)
	a.Equal("x", v)

	v, ok = Empty[string]().Get()
	a.False(ok)
	a.Empty(v)

	a.Equal(42, Empty[int]().OrElse(42))
	a.Equal(1, WithValue(1).OrElse(42))
}

func TestEqual(t *testing.T) {
	a := assert.New(t)

	cases := []struct {
		A        Maybe[[]int]
		B        Maybe[[]int]
		Expected bool
	}{
		{
			A:        Empty[[]int](),
			B:        Empty[[]int](),
			Expected: true,
		},
		{
			A:        WithValue([]int{1, 2}),
			B:        WithValue([]int{1, 2}),
			Expected: true,
		},
		{
			A:        WithValue([]int{1, 2}),
			B:        WithValue([]int{2, 1}),
			Expected: false,
		},
		{
			A:        WithValue([]int{}),
			B:        Empty[[]int](),
			Expected: false,
		},
	}
	for i, c := range cases {
		a.Equal(c.Expected, c.A.Equal(c.B), "test case %v", i)
		a.Equal(c.Expected, c.B.Equal(c.A), "test case %v", i)
	}

	// uses the Equal method of the value type
	a.True(WithValue(version{1, 2}).Equal(WithValue(version{1, 3})))
	a.False(WithValue(version{1, 2}).Equal(WithValue(version{2, 2})))
}

func TestJSON(t *testing.T) {
	a := assert.New(t)

	type payload struct {
		Name  Maybe[string] `json:"name"`
		Count Maybe[int]    `json:"count"`
	}

	b, err := json.Marshal(payload{Name: WithValue("abc")})
	a.Nil(err)
	a.JSONEq(`{"name":"abc","count":null}`, string(b))

	var decoded payload
	err = json.Unmarshal([]byte(`{"name":null,"count":0}`), &decoded)
	a.Nil(err)
	a.False(decoded.Name.HasValue())
	a.True(decoded.Count.HasValue())
	a.Equal(0, decoded.Count.Value())

	err = json.Unmarshal([]byte(`{"count":"notanumber"}`), &decoded)
	a.NotNil(err)
}

func TestOr(t *testing.T) {
	a := assert.New(t)

	l := Left[string, int]("left")
	a.True(l.IsLeft())
	a.Equal(WithValue("left"), l.Left())
	a.False(l.Right().HasValue())

	r := Right[string, int](0)
	a.False(r.IsLeft())
	a.Equal(WithValue(0), r.Right())
	a.False(r.Left().HasValue())

	m := Middle[int, string, bool]("m")
	a.False(m.First().HasValue())
	a.Equal(WithValue("m"), m.Middle())
	a.False(m.Last().HasValue())

	f := First[int, string, bool](7)
	a.Equal(WithValue(7), f.First())
	z := Last[int, string, bool](true)
	a.Equal(WithValue(true), z.Last())
}

func TestOrPredicates(t *testing.T) {
	a := assert.New(t)

	r := Right[string, int](0)
	a.True(r.IsRight())
	a.True(r.IsValid())
	a.False(Left[string, int]("").IsRight())
	a.True(Left[string, int]("").IsValid())

	var zero Or[string, int]
	a.False(zero.IsLeft())
	a.False(zero.IsRight())
	a.False(zero.IsValid())

	m := Middle[int, string, bool]("m")
	a.False(m.IsFirst())
	a.True(m.IsMiddle())
	a.False(m.IsLast())
	a.True(m.IsValid())
	a.True(First[int, string, bool](0).IsFirst())
	a.True(Last[int, string, bool](false).IsLast())

	var zero3 Or3[int, string, bool]
	a.False(zero3.IsValid())
}
