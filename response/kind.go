package response

// Kind identifies one of the response variants.
// A variant and its generic counterpart, e.g. BadInput and BadInputOf[T], have the same kind.
type Kind int

const (
	KindSuccess Kind = iota
	KindNotFound
	KindBadInput
	KindNotAuthenticated
	KindNotAuthorized
	KindNotSupported
	KindNotImplemented
	KindError
	KindAggregate
	KindStreamContent
	KindByteContent
)

func (k Kind) String() string {
	s := [...]string{"Success", "NotFound", "BadInput", "NotAuthenticated", "NotAuthorized", "NotSupported", "NotImplemented", "Error", "Aggregate", "StreamContent", "ByteContent"}
	if k >= 0 && int(k) < len(s) {
		return s[k]
	}
	return "InvalidKind"
}

// IsFailure reports whether responses of this kind describe a failed operation.
// Content responses count as successful, for an aggregate it depends on its children, so it is not considered a failure here.
func (k Kind) IsFailure() bool {
	switch k {
	case KindSuccess, KindAggregate, KindStreamContent, KindByteContent:
		return false
	default:
		return true
	}
}
