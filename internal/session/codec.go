package session

import "encoding/json"

// StorageKey is the single slot the dashboard session lives under. A
// production deployment has already written this key, so it must not
// change without a migration plan.
const StorageKey = "sudostake:dashboard-session"

// Codec serializes a DashboardSession into the session slot and decodes
// it back, rejecting anything that does not exactly match the schema.
//
// The codec never returns an error: every failure path (no store
// capability, empty slot, unparsable text, schema violation) resolves
// to "absent" on read and a silent no-op on write or clear. Callers
// treat "no valid session" uniformly whether the cause is a first
// visit, corruption, or a stale shape from an older deployment.
type Codec struct {
	store Store
}

// NewCodec creates a Codec over the given store. A nil store is a valid
// degenerate capability: Load always reports absent and Save and Clear
// are no-ops.
func NewCodec(store Store) *Codec {
	return &Codec{store: store}
}

// Load reads the session slot and decodes it. The second return value
// reports whether a fully valid session was present; when it is false
// the returned record is the zero value and must not be used.
//
// Decoding is all-or-nothing: a partially valid blob is never surfaced,
// and no type coercion is performed.
func (c *Codec) Load() (DashboardSession, bool) {
	if c.store == nil {
		return DashboardSession{}, false
	}
	raw, ok := c.store.GetItem(StorageKey)
	if !ok {
		return DashboardSession{}, false
	}

	var fields map[string]any
	if err := json.Unmarshal([]byte(raw), &fields); err != nil {
		return DashboardSession{}, false
	}
	// Unmarshal into a map accepts JSON null as a nil map; only a real
	// object may proceed.
	if fields == nil {
		return DashboardSession{}, false
	}

	walletType, ok := stringField(fields, "walletType")
	if !ok || (walletType != string(WalletKeplr) && walletType != string(WalletLedger)) {
		return DashboardSession{}, false
	}
	address, ok := stringField(fields, "address")
	if !ok || address == "" {
		return DashboardSession{}, false
	}
	// walletName may be absent, but a present value must be a string.
	var walletName string
	if v, present := fields["walletName"]; present {
		s, isString := v.(string)
		if !isString {
			return DashboardSession{}, false
		}
		walletName = s
	}
	chainKey, ok := stringField(fields, "chainKey")
	if !ok || chainKey == "" {
		return DashboardSession{}, false
	}
	chainDisplay, ok := stringField(fields, "chainDisplay")
	if !ok || chainDisplay == "" {
		return DashboardSession{}, false
	}
	network, ok := stringField(fields, "network")
	if !ok || (network != string(NetworkMainnet) && network != string(NetworkTestnet)) {
		return DashboardSession{}, false
	}
	chainID, ok := stringField(fields, "chainId")
	if !ok || chainID == "" {
		return DashboardSession{}, false
	}
	signedInAt, ok := stringField(fields, "signedInAt")
	if !ok || signedInAt == "" {
		return DashboardSession{}, false
	}

	return DashboardSession{
		WalletType:   WalletType(walletType),
		Address:      address,
		WalletName:   walletName,
		ChainKey:     chainKey,
		ChainDisplay: chainDisplay,
		Network:      Network(network),
		ChainID:      chainID,
		SignedInAt:   signedInAt,
	}, true
}

// Save serializes the session and writes it into the slot, replacing
// any previous value. The caller is trusted to pass an already-valid
// record; no re-validation happens on write.
func (c *Codec) Save(s DashboardSession) {
	if c.store == nil {
		return
	}
	data, err := json.Marshal(s)
	if err != nil {
		// A flat record of strings cannot fail to marshal.
		return
	}
	c.store.SetItem(StorageKey, string(data))
}

// Clear removes the session slot. Clearing an empty slot is a no-op.
func (c *Codec) Clear() {
	if c.store == nil {
		return
	}
	c.store.RemoveItem(StorageKey)
}

// stringField looks up key and reports whether it held a string value.
func stringField(fields map[string]any, key string) (string, bool) {
	v, present := fields[key]
	if !present {
		return "", false
	}
	s, isString := v.(string)
	return s, isString
}
