package operations

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// mockAccounts implements AccountChecker for testing.
type mockAccounts struct {
	names map[string]bool
}

func (m *mockAccounts) Exists(name string) bool {
	return m.names[name]
}

func newMockAccounts(names ...string) *mockAccounts {
	m := &mockAccounts{names: make(map[string]bool)}
	for _, n := range names {
		m.names[n] = true
	}
	return m
}

var defaultAccounts = newMockAccounts("Julian", "Andrés")

func rules(errs []ValidationError) []string {
	out := make([]string, len(errs))
	for i, e := range errs {
		out[i] = e.Rule
	}
	return out
}

func TestValidate_Valid(t *testing.T) {
	ops := []Operation{
		{ID: "OP-0001", Kind: KindTransfer, Account: "Julian", Counterparty: "Andrés", Amount: dec("500")},
		{ID: "OP-0002", Kind: KindDebit, Account: "Andrés", Amount: dec("100")},
		{ID: "OP-0003", Kind: KindCredit, Account: "Julian", Amount: dec("1")},
	}
	assert.Empty(t, ValidateOperations(ops, defaultAccounts))
}

func TestValidate_NegativeAmountAllowed(t *testing.T) {
	ops := []Operation{{ID: "OP-0001", Kind: KindDebit, Account: "Julian", Amount: dec("-1")}}
	assert.Empty(t, ValidateOperations(ops, defaultAccounts))
}

func TestValidate_UnknownKind(t *testing.T) {
	ops := []Operation{{ID: "OP-0001", Kind: "refund", Account: "Julian", Amount: dec("1")}}
	errs := ValidateOperations(ops, defaultAccounts)
	require.Len(t, errs, 1)
	assert.Equal(t, "kind", errs[0].Rule)
	assert.Equal(t, "OP-0001", errs[0].OpID)
	assert.Contains(t, errs[0].Error(), `unknown kind "refund"`)
}

func TestValidate_UnknownAccount(t *testing.T) {
	ops := []Operation{{ID: "OP-0001", Kind: KindCredit, Account: "Nadie", Amount: dec("1")}}
	errs := ValidateOperations(ops, defaultAccounts)
	assert.Equal(t, []string{"account"}, rules(errs))
}

func TestValidate_Counterparty(t *testing.T) {
	tests := []struct {
		name string
		op   Operation
		want string
	}{
		{
			"transfer without counterparty",
			Operation{ID: "OP-0001", Kind: KindTransfer, Account: "Julian", Amount: dec("1")},
			"transfer needs a counterparty",
		},
		{
			"transfer to unknown account",
			Operation{ID: "OP-0001", Kind: KindTransfer, Account: "Julian", Counterparty: "Nadie", Amount: dec("1")},
			`unknown account "Nadie"`,
		},
		{
			"debit with counterparty",
			Operation{ID: "OP-0001", Kind: KindDebit, Account: "Julian", Counterparty: "Andrés", Amount: dec("1")},
			"debit takes no counterparty",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			errs := ValidateOperations([]Operation{tt.op}, defaultAccounts)
			require.Len(t, errs, 1)
			assert.Equal(t, "counterparty", errs[0].Rule)
			assert.Contains(t, errs[0].Description, tt.want)
		})
	}
}

func TestValidate_IDs(t *testing.T) {
	t.Run("duplicate", func(t *testing.T) {
		ops := []Operation{
			{ID: "OP-0001", Kind: KindCredit, Account: "Julian", Amount: dec("1")},
			{ID: "OP-0001", Kind: KindCredit, Account: "Julian", Amount: dec("1")},
		}
		errs := ValidateOperations(ops, defaultAccounts)
		require.Len(t, errs, 1)
		assert.Equal(t, "duplicate operation ID", errs[0].Description)
	})

	t.Run("gap", func(t *testing.T) {
		ops := []Operation{
			{ID: "OP-0001", Kind: KindCredit, Account: "Julian", Amount: dec("1")},
			{ID: "OP-0003", Kind: KindCredit, Account: "Julian", Amount: dec("1")},
		}
		errs := ValidateOperations(ops, defaultAccounts)
		require.Len(t, errs, 1)
		assert.Equal(t, "OP-0002", errs[0].OpID)
	})

	t.Run("malformed", func(t *testing.T) {
		ops := []Operation{{ID: "primera", Kind: KindCredit, Account: "Julian", Amount: dec("1")}}
		errs := ValidateOperations(ops, defaultAccounts)
		assert.Equal(t, []string{"id"}, rules(errs))
	})
}

func TestValidate_CollectsAll(t *testing.T) {
	ops := []Operation{
		{ID: "OP-0001", Kind: "x", Account: "Nadie", Counterparty: "Julian", Amount: dec("1")},
	}
	errs := ValidateOperations(ops, defaultAccounts)
	assert.ElementsMatch(t, []string{"kind", "account", "counterparty"}, rules(errs))
}
