package sample

import (
	"context"
	"io"
	"strings"
	"testing"
	"time"

	"github.com/dkinzler/respkit/maybe"
	"github.com/dkinzler/respkit/response"
	ktime "github.com/dkinzler/respkit/time"
	"github.com/stretchr/testify/assert"
)

var testTime = time.Date(2022, 4, 4, 13, 37, 0, 0, time.UTC)

func newTestService() (*Service, *ktime.FixedClock) {
	clock := ktime.NewFixedClock(testTime)
	return NewService(clock), clock
}

func createItem(t *testing.T, s *Service, name string, quantity int) Item {
	r, err := s.Create(context.Background(), NewItem{Name: name, Quantity: quantity})
	assert.Nil(t, err)
	typed, ok := r.(response.Typed[Item])
	assert.True(t, ok)
	return typed.Payload().Value()
}

func TestCreateAndGet(t *testing.T) {
	a := assert.New(t)
	s, _ := newTestService()
	ctx := context.Background()

	item := createItem(t, s, "apple", 3)
	a.NotEmpty(item.ID)
	a.Equal("apple", item.Name)
	a.Equal(3, item.Quantity)

	r, err := s.Get(ctx, item.ID)
	a.Nil(err)
	a.Equal(response.Ok(item), r)

	r, err = s.Create(ctx, NewItem{Name: " ", Quantity: 1})
	a.Nil(err)
	a.Equal(response.NewBadInput("must not be empty", "name"), r)

	r, err = s.Create(ctx, NewItem{Name: "pear", Quantity: -1})
	a.Nil(err)
	a.Equal(response.KindBadInput, r.Kind())
	a.Equal("quantity", r.(response.BadInput).Resource())

	r, err = s.Create(ctx, NewItem{Name: strings.Repeat("x", maxNameLength+1)})
	a.Nil(err)
	a.Equal(response.KindBadInput, r.Kind())
}

func TestGetNotFound(t *testing.T) {
	a := assert.New(t)
	s, _ := newTestService()

	r, err := s.Get(context.Background(), "c3a1b7c6-3f4e-4a1b-9a43-0d2f0e6e9b11")
	a.Nil(err)
	a.Equal(response.NewNotFound("item not found", "/api/sample/c3a1b7c6-3f4e-4a1b-9a43-0d2f0e6e9b11"), r)

	// a malformed id cannot exist
	r, err = s.Get(context.Background(), "abc")
	a.Nil(err)
	a.Equal(response.NewNotFound("item not found", "/api/sample/abc"), r)
}

func TestUpdate(t *testing.T) {
	a := assert.New(t)
	s, clock := newTestService()
	ctx := context.Background()
	item := createItem(t, s, "apple", 3)
	a.Equal(testTime, item.UpdatedAt)

	// only fields with a value change
	clock.Advance(time.Hour)
	r, err := s.Update(ctx, item.ID, ItemUpdate{Quantity: maybe.WithValue(10)})
	a.Nil(err)
	a.Equal(response.Ok(Item{ID: item.ID, Name: "apple", Quantity: 10, UpdatedAt: testTime.Add(time.Hour)}), r)

	r, err = s.Update(ctx, item.ID, ItemUpdate{Name: maybe.WithValue("")})
	a.Nil(err)
	a.Equal(response.KindBadInput, r.Kind())
	r, _ = s.Get(ctx, item.ID)
	a.Equal("apple", r.(response.Typed[Item]).Payload().Value().Name)

	r, err = s.Update(ctx, "abc", ItemUpdate{})
	a.Nil(err)
	a.Equal(response.KindBadInput, r.Kind())
	a.Equal("id", r.(response.BadInput).Resource())

	r, err = s.Update(ctx, "c3a1b7c6-3f4e-4a1b-9a43-0d2f0e6e9b11", ItemUpdate{})
	a.Nil(err)
	a.Equal(response.KindNotFound, r.Kind())
}

func TestBatchUpdate(t *testing.T) {
	a := assert.New(t)
	s, _ := newTestService()
	ctx := context.Background()
	apple := createItem(t, s, "apple", 3)
	pear := createItem(t, s, "pear", 1)

	r, err := s.BatchUpdate(ctx, []BatchItemUpdate{
		{ID: apple.ID, ItemUpdate: ItemUpdate{Quantity: maybe.WithValue(5)}},
		{ID: "c3a1b7c6-3f4e-4a1b-9a43-0d2f0e6e9b11"},
		{ID: pear.ID, ItemUpdate: ItemUpdate{Quantity: maybe.WithValue(-5)}},
	})
	a.Nil(err)
	agg, ok := r.(response.Aggregate)
	a.True(ok)
	a.Equal("1 items updated", agg.Message())
	children := agg.Responses()
	a.Len(children, 3)
	a.Equal(response.KindSuccess, children[0].Kind())
	a.Equal(response.KindNotFound, children[1].Kind())
	a.Equal(response.KindBadInput, children[2].Kind())

	r, _ = s.Get(ctx, apple.ID)
	a.Equal(5, r.(response.Typed[Item]).Payload().Value().Quantity)

	r, err = s.BatchUpdate(ctx, nil)
	a.Nil(err)
	a.Equal(response.KindBadInput, r.Kind())

	cctx, cancel := context.WithCancel(ctx)
	cancel()
	_, err = s.BatchUpdate(cctx, []BatchItemUpdate{{ID: apple.ID}})
	a.NotNil(err)
}

func TestDelete(t *testing.T) {
	a := assert.New(t)
	s, _ := newTestService()
	ctx := context.Background()
	item := createItem(t, s, "apple", 3)

	r, err := s.Delete(ctx, item.ID)
	a.Nil(err)
	a.Equal(response.NewSuccess("item deleted"), r)

	r, _ = s.Get(ctx, item.ID)
	a.Equal(response.KindNotFound, r.Kind())

	r, _ = s.Delete(ctx, item.ID)
	a.Equal(response.KindNotFound, r.Kind())
}

func TestList(t *testing.T) {
	a := assert.New(t)
	s, _ := newTestService()
	ctx := context.Background()
	pear := createItem(t, s, "pear", 1)
	apple := createItem(t, s, "apple", 3)
	pineapple := createItem(t, s, "Pineapple", 7)

	r, err := s.List(ctx, ListFilter{})
	a.Nil(err)
	a.Equal(response.Ok([]Item{pineapple, apple, pear}), r)

	r, _ = s.List(ctx, ListFilter{Name: "APPLE", MinQuantity: 4})
	a.Equal(response.Ok([]Item{pineapple}), r)

	r, _ = s.List(ctx, ListFilter{Name: "banana"})
	a.Equal(response.Ok([]Item{}), r)
}

func TestExportAndSummary(t *testing.T) {
	a := assert.New(t)
	s, _ := newTestService()
	ctx := context.Background()
	apple := createItem(t, s, "apple", 3)
	createItem(t, s, "pear", 1)
	createItem(t, s, "pear", 2)

	r, err := s.Export(ctx)
	a.Nil(err)
	sc, ok := r.(response.StreamContent)
	a.True(ok)
	a.Equal("text/csv", sc.ContentType())
	b, err := io.ReadAll(sc.Content())
	a.Nil(err)
	lines := strings.Split(strings.TrimSpace(string(b)), "\n")
	a.Len(lines, 4)
	a.Equal("id,name,quantity", lines[0])
	a.Equal(apple.ID+",apple,3", lines[1])

	r, err = s.Summary(ctx)
	a.Nil(err)
	bc, ok := r.(response.ByteContent)
	a.True(ok)
	a.Equal("apple: 3\npear: 3\n", string(bc.Content()))
}
