package procedure

// CallType tags a call as query, mutation or subscription. The core
// forwards it to middleware and the resolver but never interprets it;
// the transport decides which types a route accepts.
type CallType string

const (
	Query        CallType = "query"
	Mutation     CallType = "mutation"
	Subscription CallType = "subscription"
)

// KnownCallType reports whether t is one of the enumerated call types.
func KnownCallType(t CallType) bool {
	switch t {
	case Query, Mutation, Subscription:
		return true
	}
	return false
}
