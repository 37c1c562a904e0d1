package errors

// Kind identifies which stage of the tick pipeline an error originated from.
type Kind int

const (
	// KindUnknown is returned by GetKind for errors that are not *Error.
	KindUnknown Kind = iota

	// KindValidation marks a request that violated the client contract
	// before any network activity took place.
	KindValidation

	// KindNetwork marks a transport failure, e.g. an unreachable server or
	// a rate-limited request. A 404 or empty body is not a network error.
	KindNetwork

	// KindDecode marks a payload that was fetched but is malformed and
	// therefore cannot be decompressed.
	KindDecode
)

// String implements fmt.Stringer.
func (k Kind) String() string {
	switch k {
	case KindValidation:
		return "validation"
	case KindNetwork:
		return "network"
	case KindDecode:
		return "decode"
	case KindUnknown:
		return "unknown"
	default:
		return "unknown"
	}
}
