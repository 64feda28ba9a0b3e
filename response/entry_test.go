package response

import (
	"encoding/json"
	stderrors "errors"
	"fmt"
	"testing"

	"github.com/dkinzler/respkit/errors"
	"github.com/stretchr/testify/assert"
)

func TestNewErrorEntry(t *testing.T) {
	a := assert.New(t)

	e := NewErrorEntry(1, "Name", "", stderrors.New("name too long"))
	a.Equal("name too long", e.Message)
	a.Equal(uint16(1), e.Severity)
	a.Equal("Name", e.RelatedTo)

	e = NewErrorEntry(0, "", "explicit", stderrors.New("inner"))
	a.Equal("explicit", e.Message)
}

func TestEntryBuilder(t *testing.T) {
	a := assert.New(t)

	e, err := NewEntryBuilder().WithMessage("something failed").WithSeverity(3).Build()
	a.Nil(err)
	a.Equal(ErrorEntry{Severity: 3, Message: "something failed"}, e)

	// related to and message are derived from an invalid argument error
	argErr := errors.NewInvalidArgument("test", "Email").WithPublicMessage("invalid email")
	e, err = NewEntryBuilder().WithError(fmt.Errorf("validation: %w", argErr)).Build()
	a.Nil(err)
	a.Equal("Email", e.RelatedTo)
	a.Equal("validation: "+argErr.Error(), e.Message)

	e, err = NewEntryBuilder().WithError(argErr).Build()
	a.Nil(err)
	a.Equal("Email", e.RelatedTo)
	a.Equal("invalid email", e.Message)

	// explicit values win
	e, err = NewEntryBuilder().WithError(argErr).WithRelatedTo("Other").WithMessage("custom").Build()
	a.Nil(err)
	a.Equal("Other", e.RelatedTo)
	a.Equal("custom", e.Message)
	a.Equal(argErr, e.Err)

	// errors with another code do not provide a related to value
	e, err = NewEntryBuilder().WithError(errors.New(nil, "test", errors.NotFound).WithParam("id")).Build()
	a.Nil(err)
	a.Empty(e.RelatedTo)
	a.Equal("NotFound", e.Message)

	// the builder is a value
	b := NewEntryBuilder().WithMessage("a")
	_ = b.WithMessage("b")
	e, _ = b.Build()
	a.Equal("a", e.Message)

	_, err = NewEntryBuilder().WithMessage("  ").Build()
	a.NotNil(err)
	a.True(errors.IsInvalidArgumentError(err))
	param, ok := errors.ParamOf(err)
	a.True(ok)
	a.Equal("message", param)

	_, err = NewEntryBuilder().WithSeverity(1).Build()
	a.NotNil(err)
}

func TestErrorJSON(t *testing.T) {
	a := assert.New(t)

	entry := NewErrorEntry(2, "Name", "", errors.New(nil, "test", errors.Internal).WithPublicMessage("db down"))
	b, err := json.Marshal(entry)
	a.Nil(err)
	a.JSONEq(`{"severity":2,"relatedTo":"Name","message":"db down","error":"db down"}`, string(b))

	b, err = json.Marshal(ErrorEntry{Message: "only message"})
	a.Nil(err)
	a.JSONEq(`{"message":"only message"}`, string(b))

	b, err = json.Marshal(NewError("failed", ErrorEntry{Message: "x"}))
	a.Nil(err)
	a.JSONEq(`{"message":"failed","errors":[{"message":"x"}]}`, string(b))

	b, err = json.Marshal(NewError("failed"))
	a.Nil(err)
	a.JSONEq(`{"message":"failed","errors":[]}`, string(b))
}
