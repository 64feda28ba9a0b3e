// Package sample is a small example service that manages an in-memory list of items.
// It shows how service methods return responses and how they are exposed over HTTP with go-kit.
package sample

import (
	"bytes"
	"context"
	"encoding/csv"
	"fmt"
	"sort"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/dkinzler/respkit/collection"
	"github.com/dkinzler/respkit/maybe"
	"github.com/dkinzler/respkit/response"
	ksync "github.com/dkinzler/respkit/sync"
	"github.com/dkinzler/respkit/task"
	ktime "github.com/dkinzler/respkit/time"
	"github.com/dkinzler/respkit/uuid"
)

type Item struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Quantity int    `json:"quantity"`
	// time of creation or last update
	UpdatedAt time.Time `json:"updatedAt"`
}

type NewItem struct {
	Name     string `json:"name"`
	Quantity int    `json:"quantity"`
}

// Only fields with a value are changed.
type ItemUpdate struct {
	Name     maybe.Maybe[string] `json:"name"`
	Quantity maybe.Maybe[int]    `json:"quantity"`
}

// ItemUpdate for the item with the given id, used for batch updates.
type BatchItemUpdate struct {
	ID string `json:"id"`
	ItemUpdate
}

type ListFilter struct {
	// only return items whose name contains this string, case is ignored
	Name        string `schema:"name"`
	MinQuantity int    `schema:"minQuantity"`
}

const maxNameLength = 100

// Service stores items in memory.
// It is safe for concurrent use, updates of the same item are serialized.
type Service struct {
	mutex sync.RWMutex
	items map[string]Item
	// held while an item is read, modified and written back
	itemLocks *ksync.MutexMap[string]
	clock     ktime.Clock
}

// NewService returns an empty service, clock is used to timestamp items.
// If clock is nil, the system clock is used.
func NewService(clock ktime.Clock) *Service {
	return &Service{
		items:     make(map[string]Item),
		itemLocks: ksync.NewMutexMap[string](),
		clock:     ktime.ClockOrDefault(clock),
	}
}

// List returns all items matching the filter sorted by name.
func (s *Service) List(ctx context.Context, filter ListFilter) (response.Response, error) {
	items := s.sortedItems()
	name := strings.ToLower(filter.Name)
	result := collection.Filter(items, func(item Item) bool {
		return strings.Contains(strings.ToLower(item.Name), name) && item.Quantity >= filter.MinQuantity
	})
	if result == nil {
		result = []Item{}
	}
	return response.Ok(result), nil
}

// Get returns the item with the given id.
// A malformed id is reported as NotFound, since no item can have it.
func (s *Service) Get(ctx context.Context, id string) (response.Response, error) {
	return response.When(s.get(id)).
		ExecuteIf(response.IsKind(response.KindBadInput), func(r response.Response) response.Response {
			return response.NewNotFound("item not found", itemResource(id))
		}).
		Return(), nil
}

func (s *Service) get(id string) response.Response {
	if err := uuid.Validate(id, "id"); err != nil {
		return response.FromError(err)
	}
	s.mutex.RLock()
	item, ok := s.items[id]
	s.mutex.RUnlock()
	if !ok {
		return response.NewNotFound("item not found", itemResource(id))
	}
	return response.Ok(item)
}

// Create adds a new item and returns it.
func (s *Service) Create(ctx context.Context, n NewItem) (response.Response, error) {
	if r := validate(n.Name, n.Quantity); r != nil {
		return r, nil
	}
	id, err := uuid.NewUUID()
	if err != nil {
		return nil, err
	}
	item := Item{ID: id, Name: n.Name, Quantity: n.Quantity, UpdatedAt: s.clock.Now()}
	s.mutex.Lock()
	s.items[id] = item
	s.mutex.Unlock()
	return response.CastTo(response.NewSuccess("item created"), maybe.WithValue(item)), nil
}

// Update changes the fields of the item that have a value in u and returns the updated item.
func (s *Service) Update(ctx context.Context, id string, u ItemUpdate) (response.Response, error) {
	if err := uuid.Validate(id, "id"); err != nil {
		return response.FromError(err), nil
	}
	return ksync.WithLock(s.itemLocks, id, func() response.Response {
		s.mutex.RLock()
		item, ok := s.items[id]
		s.mutex.RUnlock()
		if !ok {
			return response.NewNotFound("item not found", itemResource(id))
		}
		item.Name = u.Name.OrElse(item.Name)
		item.Quantity = u.Quantity.OrElse(item.Quantity)
		if r := validate(item.Name, item.Quantity); r != nil {
			return r
		}
		item.UpdatedAt = s.clock.Now()
		s.mutex.Lock()
		s.items[id] = item
		s.mutex.Unlock()
		return response.Ok(item)
	}), nil
}

// BatchUpdate applies all updates concurrently and returns an aggregate with one child response per update, in the same order.
func (s *Service) BatchUpdate(ctx context.Context, updates []BatchItemUpdate) (response.Response, error) {
	if len(updates) == 0 {
		return response.NewBadInput("no updates", "updates"), nil
	}
	futures := make([]*task.Future[response.Response], len(updates))
	collection.ForEachIndexed(updates, func(i int, u BatchItemUpdate) {
		futures[i] = task.Start(ctx, func(ctx context.Context) (response.Response, error) {
			return s.Update(ctx, u.ID, u.ItemUpdate)
		})
	})

	children := make([]response.Response, len(updates))
	err := collection.ForEachIndexedContext(ctx, futures, func(ctx context.Context, i int, f *task.Future[response.Response]) error {
		r, err := f.Await(ctx)
		if err != nil {
			return err
		}
		children[i] = r
		return nil
	})
	if err != nil {
		return nil, err
	}
	return response.NewAggregate(fmt.Sprintf("%v items updated", countKind(children, response.KindSuccess)), children...), nil
}

// Delete removes the item with the given id.
func (s *Service) Delete(ctx context.Context, id string) (response.Response, error) {
	if err := uuid.Validate(id, "id"); err != nil {
		return response.FromError(err), nil
	}
	return ksync.WithLock(s.itemLocks, id, func() response.Response {
		s.mutex.Lock()
		defer s.mutex.Unlock()
		if _, ok := s.items[id]; !ok {
			return response.NewNotFound("item not found", itemResource(id))
		}
		delete(s.items, id)
		return response.NewSuccess("item deleted")
	}), nil
}

// Export streams all items as CSV.
func (s *Service) Export(ctx context.Context) (response.Response, error) {
	var buf bytes.Buffer
	w := csv.NewWriter(&buf)
	w.Write([]string{"id", "name", "quantity"})
	collection.ForEach(s.sortedItems(), func(item Item) {
		w.Write([]string{item.ID, item.Name, strconv.Itoa(item.Quantity)})
	})
	w.Flush()
	if err := w.Error(); err != nil {
		return nil, err
	}
	return response.NewStreamContent("items.csv", &buf, "text/csv"), nil
}

// Summary returns the total quantity per item name as plain text, one name per line.
func (s *Service) Summary(ctx context.Context) (response.Response, error) {
	totals := make(map[string]*int)
	var names []string
	collection.ForEach(s.sortedItems(), func(item Item) {
		total := collection.GetOrAdd(totals, item.Name, func(name string) *int {
			names = append(names, name)
			return new(int)
		})
		*total += item.Quantity
	})
	var b strings.Builder
	collection.ForEach(names, func(name string) {
		fmt.Fprintf(&b, "%v: %v\n", name, *totals[name])
	})
	return response.NewByteContent("summary", []byte(b.String()), "text/plain; charset=utf-8"), nil
}

func (s *Service) sortedItems() []Item {
	s.mutex.RLock()
	items := make([]Item, 0, len(s.items))
	for _, item := range s.items {
		items = append(items, item)
	}
	s.mutex.RUnlock()
	sort.Slice(items, func(i, j int) bool {
		if items[i].Name == items[j].Name {
			return items[i].ID < items[j].ID
		}
		return items[i].Name < items[j].Name
	})
	return items
}

func validate(name string, quantity int) response.Response {
	if strings.TrimSpace(name) == "" {
		return response.NewBadInput("must not be empty", "name")
	}
	if len(name) > maxNameLength {
		return response.NewBadInput(fmt.Sprintf("must not be longer than %v characters", maxNameLength), "name")
	}
	if quantity < 0 {
		return response.NewBadInput("must not be negative", "quantity")
	}
	return nil
}

func itemResource(id string) string {
	return "/api/sample/" + id
}

func countKind(rs []response.Response, k response.Kind) int {
	n := 0
	collection.ForEach(rs, func(r response.Response) {
		if response.IsKind(k)(r) {
			n++
		}
	})
	return n
}
