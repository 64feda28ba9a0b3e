package response

import (
	"context"
	stderrors "errors"
	"testing"

	"github.com/dkinzler/respkit/errors"
	"github.com/dkinzler/respkit/maybe"
	"github.com/stretchr/testify/assert"
)

func TestWhenExecute(t *testing.T) {
	a := assert.New(t)

	req := NewNotFound("missing", "/persons/1")
	r := When(req).Execute(func(r Response) Response {
		return NewBadInput(r.Message(), "id")
	}).Return()
	a.Equal(NewBadInput("missing", "id"), r)

	// without a transform the request is returned
	a.Equal(req, When(req).Return())
	// a transform returning nil also yields the request
	a.Equal(req, When(req).Execute(func(r Response) Response { return nil }).Return())
	a.Nil(When(nil).Return())
}

func TestWhenMatchesOriginalRequest(t *testing.T) {
	a := assert.New(t)

	calls := 0
	r := When(NewNotFound("missing", "")).
		ExecuteIf(Is[NotFound](), func(r Response) Response {
			calls++
			return NewSuccess("recovered")
		}).
		// the request is still a NotFound, this must not run
		ExecuteIf(Is[Success](), func(r Response) Response {
			calls++
			return NewError("unexpected")
		}).
		Return()
	a.Equal(1, calls)
	a.Equal(NewSuccess("recovered"), r)

	r = When(NewSuccess("ok")).
		ExecuteIfNot(Is[Success](), func(r Response) Response {
			return NewError("unexpected")
		}).
		ExecuteIfNot(IsKind(KindError), func(r Response) Response {
			return NewSuccess("changed")
		}).
		Return()
	a.Equal(NewSuccess("changed"), r)

	// last transform that runs wins, every transform sees the request
	var seen []string
	r = When(NewSuccess("original")).
		Execute(func(r Response) Response {
			seen = append(seen, r.Message())
			return NewSuccess("first")
		}).
		Execute(func(r Response) Response {
			seen = append(seen, r.Message())
			return NewSuccess("second")
		}).
		Return()
	a.Equal([]string{"original", "original"}, seen)
	a.Equal("second", r.Message())
}

func TestWhenAs(t *testing.T) {
	a := assert.New(t)

	r := When(NewBadInput("too short", "Name")).
		ExecuteIf(IsKind(KindBadInput), As(func(b BadInput) Response {
			return NewBadInput(b.Message(), "person."+b.Resource())
		})).
		Return()
	a.Equal("person.Name", r.(BadInput).Resource())

	// input of another type is passed through
	req := NewSuccess("ok")
	a.Equal(req, When(req).Execute(As(func(b BadInput) Response {
		return NewError("unexpected")
	})).Return())
}

func TestWhenContext(t *testing.T) {
	a := assert.New(t)
	ctx := context.Background()

	b, err := When(NewSuccess("ok")).ExecuteContext(ctx, func(ctx context.Context, r Response) (Response, error) {
		return NewSuccess("changed"), nil
	})
	a.Nil(err)
	a.Equal("changed", b.Return().Message())

	// a failing transform does not change the result
	testErr := stderrors.New("failed")
	b, err = b.ExecuteContext(ctx, func(ctx context.Context, r Response) (Response, error) {
		return NewError("unexpected"), testErr
	})
	a.Equal(testErr, err)
	a.Equal("changed", b.Return().Message())

	calls := 0
	b, err = When(NewNotFound("", "")).ExecuteIfContext(ctx, Is[Success](), func(ctx context.Context, r Response) (Response, error) {
		calls++
		return r, nil
	})
	a.Nil(err)
	a.Equal(0, calls)
	b, err = b.ExecuteIfNotContext(ctx, Is[Success](), AsContext(func(ctx context.Context, r NotFound) (Response, error) {
		calls++
		return NewSuccess("found"), nil
	}))
	a.Nil(err)
	a.Equal(1, calls)
	a.Equal(NewSuccess("found"), b.Return())

	b, err = When(NewSuccess("")).ExecuteContext(ctx, IntoContext(func(ctx context.Context, r Response) (Typed[int], error) {
		return CastTo(r, maybe.WithValue(5)), nil
	}))
	a.Nil(err)
	a.Equal(5, Return[int](b).Payload().Value())
}

func TestWhenPanicsOnNilArguments(t *testing.T) {
	a := assert.New(t)

	defer func() {
		r := recover()
		a.NotNil(r)
		err, ok := r.(errors.Error)
		a.True(ok)
		a.Equal(errors.InvalidArgument, err.Code)
		a.Equal("fn", err.Param)
	}()
	When(NewSuccess("")).Execute(nil)
}

func TestReturn(t *testing.T) {
	a := assert.New(t)

	// no transform, the request is cast with an empty payload
	r := Return[person](When(NewNotFound("missing", "/persons/1")))
	nf, ok := r.(NotFoundOf[person])
	a.True(ok)
	a.Equal("/persons/1", nf.Resource())
	a.False(nf.Payload().HasValue())

	// a typed result is returned as is
	r = Return[person](When(NewSuccess("")).Execute(Into(func(r Response) Typed[person] {
		return Ok(person{Name: "Ann"})
	})))
	a.Equal("Ann", r.Payload().Value().Name)

	r = ReturnWith(When(NewSuccess("created")), maybe.WithValue(person{Name: "Bob"}))
	a.Equal("created", r.Message())
	a.Equal("Bob", r.Payload().Value().Name)

	// a result with another payload type is cast
	r = ReturnWith(When(Ok(1)), maybe.WithValue(person{Name: "Bob"}))
	a.Equal(KindSuccess, r.Kind())
	a.Equal("Bob", r.Payload().Value().Name)

	a.Nil(Return[person](When(nil)))
}

func TestWhenOf(t *testing.T) {
	a := assert.New(t)

	req := CastTo(NewBadInput("too young", "Age"), maybe.WithValue(person{Name: "Ann"}))
	r := WhenOf(req).
		ExecuteIf(Is[BadInputOf[person]](), func(r Typed[person]) Response {
			return NewBadInput(r.Payload().Value().Name+" is too young", "Age")
		}).
		Return()
	a.Equal(NewBadInput("Ann is too young", "Age"), r)

	// a transform can change the payload type
	typed := Return[int](WhenOf[person](Ok(person{Name: "Ann"})).Execute(IntoOf(func(r Typed[person]) Typed[int] {
		return CastTo(r, maybe.WithValue(len(r.Payload().Value().Name)))
	})))
	a.Equal(3, typed.Payload().Value())

	r = WhenOf(req).
		ExecuteIfNot(IsKind(KindBadInput), func(r Typed[person]) Response {
			return NewError("unexpected")
		}).
		Execute(AsOf[person](func(b BadInputOf[person]) Response {
			return NewSuccess(b.Resource())
		})).
		Return()
	a.Equal(NewSuccess("Age"), r)

	b, err := WhenOf(req).ExecuteIfContext(context.Background(), IsKind(KindBadInput), func(ctx context.Context, r Typed[person]) (Response, error) {
		return nil, stderrors.New("failed")
	})
	a.NotNil(err)
	a.Equal(req, b.Return())

	b, err = WhenOf(req).ExecuteIfNotContext(context.Background(), IsKind(KindSuccess), func(ctx context.Context, r Typed[person]) (Response, error) {
		return NewSuccess("ok"), nil
	})
	a.Nil(err)
	a.Equal(NewSuccess("ok"), b.Return())

	b, err = WhenOf(req).ExecuteContext(context.Background(), func(ctx context.Context, r Typed[person]) (Response, error) {
		return NewSuccess("ctx"), nil
	})
	a.Nil(err)
	a.Equal("ctx", b.Return().Message())
}

func TestWhenMatchesGenericCounterpart(t *testing.T) {
	a := assert.New(t)

	req := CastTo(NewNotFound("missing", "/persons/1"), maybe.WithValue(1))
	ran := false
	r := WhenOf(req).
		ExecuteIf(Is[NotFound](), func(r Typed[int]) Response {
			ran = true
			return NewSuccess("recovered")
		}).
		Return()
	a.True(ran)
	a.Equal(NewSuccess("recovered"), r)

	r = When(req).
		ExecuteIf(Is[NotFound](), As(func(nf NotFound) Response {
			return NewBadInput(nf.Message(), nf.Resource())
		})).
		Return()
	a.Equal(NewBadInput("missing", "/persons/1"), r)

	// a non-generic request does not match a generic counterpart
	a.Equal(NewNotFound("", ""), When(NewNotFound("", "")).
		ExecuteIf(Is[NotFoundOf[int]](), func(r Response) Response {
			return NewError("unexpected")
		}).
		Return())
}
