// Package tokenfactory contains RPC wrappers for Token Factory contract.
package tokenfactory

import (
	"errors"
	"fmt"
	"github.com/google/uuid"
	"github.com/nspcc-dev/neo-go/pkg/core/transaction"
	"github.com/nspcc-dev/neo-go/pkg/neorpc/result"
	"github.com/nspcc-dev/neo-go/pkg/rpcclient/unwrap"
	"github.com/nspcc-dev/neo-go/pkg/util"
	"github.com/nspcc-dev/neo-go/pkg/vm/stackitem"
	"math/big"
	"unicode/utf8"
)

// FactoryDenomUnit is a contract-specific factory.DenomUnit type used by its methods.
type FactoryDenomUnit struct {
	Denom string
	Exponent *big.Int
	Aliases []string
}

// FactoryMetadata is a contract-specific factory.Metadata type used by its methods.
type FactoryMetadata struct {
	Description string
	DenomUnits []*FactoryDenomUnit
	Base string
	Display string
	Name string
	Symbol string
	URI string
}

// TokenfactoryBalance is a contract-specific tokenfactory.Balance type used by its methods.
type TokenfactoryBalance struct {
	Recipient util.Uint160
	Amount *big.Int
}

// TokenfactoryDenomInfo is a contract-specific tokenfactory.DenomInfo type used by its methods.
type TokenfactoryDenomInfo struct {
	Denom string
	Metadata *FactoryMetadata
	Minted *big.Int
	Burned *big.Int
}

// TokenfactorySettings is a contract-specific tokenfactory.Settings type used by its methods.
type TokenfactorySettings struct {
	Manager util.Uint160
}

// DispatchEvent represents "Dispatch" event emitted by the contract.
type DispatchEvent struct {
	ReplyID *big.Int
	ReplyAlways bool
	TypeURL string
	Value []byte
}

// Invoker is used by ContractReader to call various safe methods.
type Invoker interface {
	Call(contract util.Uint160, operation string, params ...any) (*result.Invoke, error)
	CallAndExpandIterator(contract util.Uint160, method string, maxItems int, params ...any) (*result.Invoke, error)
	TerminateSession(sessionID uuid.UUID) error
	TraverseIterator(sessionID uuid.UUID, iterator *result.Iterator, num int) ([]stackitem.Item, error)
}

// Actor is used by Contract to call state-changing methods.
type Actor interface {
	Invoker

	MakeCall(contract util.Uint160, method string, params ...any) (*transaction.Transaction, error)
	MakeRun(script []byte) (*transaction.Transaction, error)
	MakeUnsignedCall(contract util.Uint160, method string, attrs []transaction.Attribute, params ...any) (*transaction.Transaction, error)
	MakeUnsignedRun(script []byte, attrs []transaction.Attribute) (*transaction.Transaction, error)
	SendCall(contract util.Uint160, method string, params ...any) (util.Uint256, uint32, error)
	SendRun(script []byte) (util.Uint256, uint32, error)
}

// ContractReader implements safe contract methods.
type ContractReader struct {
	invoker Invoker
	hash util.Uint160
}

// Contract implements all contract methods.
type Contract struct {
	ContractReader
	actor Actor
	hash util.Uint160
}

// NewReader creates an instance of ContractReader using provided contract hash and the given Invoker.
func NewReader(invoker Invoker, hash util.Uint160) *ContractReader {
	return &ContractReader{invoker, hash}
}

// New creates an instance of Contract using provided contract hash and the given Actor.
func New(actor Actor, hash util.Uint160) *Contract {
	return &Contract{ContractReader{actor, hash}, actor, hash}
}

// Config invokes `config` method of contract.
func (c *ContractReader) Config() (*TokenfactorySettings, error) {
	return itemToTokenfactorySettings(unwrap.Item(c.invoker.Call(c.hash, "config")))
}

// Info invokes `info` method of contract.
func (c *ContractReader) Info() (*TokenfactoryDenomInfo, error) {
	return itemToTokenfactoryDenomInfo(unwrap.Item(c.invoker.Call(c.hash, "info")))
}

// InitialBalances invokes `initialBalances` method of contract.
func (c *ContractReader) InitialBalances() (uuid.UUID, result.Iterator, error) {
	return unwrap.SessionIterator(c.invoker.Call(c.hash, "initialBalances"))
}

// InitialBalancesExpanded is similar to InitialBalances (uses the same contract
// method), but can be useful if the server used doesn't support sessions and
// doesn't expand iterators. It creates a script that will get the specified
// number of result items from the iterator right in the VM and return them to
// you. It's only limited by VM stack and GAS available for RPC invocations.
func (c *ContractReader) InitialBalancesExpanded(_numOfIteratorItems int) ([]stackitem.Item, error) {
	return unwrap.Array(c.invoker.CallAndExpandIterator(c.hash, "initialBalances", _numOfIteratorItems))
}

// Version invokes `version` method of contract.
func (c *ContractReader) Version() (*big.Int, error) {
	return unwrap.BigInt(c.invoker.Call(c.hash, "version"))
}

// Burn creates a transaction invoking `burn` method of the contract.
// This transaction is signed and immediately sent to the network.
// The values returned are its hash, ValidUntilBlock value and error if any.
func (c *Contract) Burn(amount *big.Int) (util.Uint256, uint32, error) {
	return c.actor.SendCall(c.hash, "burn", amount)
}

// BurnTransaction creates a transaction invoking `burn` method of the contract.
// This transaction is signed, but not sent to the network, instead it's
// returned to the caller.
func (c *Contract) BurnTransaction(amount *big.Int) (*transaction.Transaction, error) {
	return c.actor.MakeCall(c.hash, "burn", amount)
}

// BurnUnsigned creates a transaction invoking `burn` method of the contract.
// This transaction is not signed, it's simply returned to the caller.
// Any fields of it that do not affect fees can be changed (ValidUntilBlock,
// Nonce), fee values (NetworkFee, SystemFee) can be increased as well.
func (c *Contract) BurnUnsigned(amount *big.Int) (*transaction.Transaction, error) {
	return c.actor.MakeUnsignedCall(c.hash, "burn", nil, amount)
}

// Mint creates a transaction invoking `mint` method of the contract.
// This transaction is signed and immediately sent to the network.
// The values returned are its hash, ValidUntilBlock value and error if any.
func (c *Contract) Mint(recipient util.Uint160, amount *big.Int) (util.Uint256, uint32, error) {
	return c.actor.SendCall(c.hash, "mint", recipient, amount)
}

// MintTransaction creates a transaction invoking `mint` method of the contract.
// This transaction is signed, but not sent to the network, instead it's
// returned to the caller.
func (c *Contract) MintTransaction(recipient util.Uint160, amount *big.Int) (*transaction.Transaction, error) {
	return c.actor.MakeCall(c.hash, "mint", recipient, amount)
}

// MintUnsigned creates a transaction invoking `mint` method of the contract.
// This transaction is not signed, it's simply returned to the caller.
// Any fields of it that do not affect fees can be changed (ValidUntilBlock,
// Nonce), fee values (NetworkFee, SystemFee) can be increased as well.
func (c *Contract) MintUnsigned(recipient util.Uint160, amount *big.Int) (*transaction.Transaction, error) {
	return c.actor.MakeUnsignedCall(c.hash, "mint", nil, recipient, amount)
}

// RemoveDenomAdmin creates a transaction invoking `removeDenomAdmin` method of the contract.
// This transaction is signed and immediately sent to the network.
// The values returned are its hash, ValidUntilBlock value and error if any.
func (c *Contract) RemoveDenomAdmin() (util.Uint256, uint32, error) {
	return c.actor.SendCall(c.hash, "removeDenomAdmin")
}

// RemoveDenomAdminTransaction creates a transaction invoking `removeDenomAdmin` method of the contract.
// This transaction is signed, but not sent to the network, instead it's
// returned to the caller.
func (c *Contract) RemoveDenomAdminTransaction() (*transaction.Transaction, error) {
	return c.actor.MakeCall(c.hash, "removeDenomAdmin")
}

// RemoveDenomAdminUnsigned creates a transaction invoking `removeDenomAdmin` method of the contract.
// This transaction is not signed, it's simply returned to the caller.
// Any fields of it that do not affect fees can be changed (ValidUntilBlock,
// Nonce), fee values (NetworkFee, SystemFee) can be increased as well.
func (c *Contract) RemoveDenomAdminUnsigned() (*transaction.Transaction, error) {
	return c.actor.MakeUnsignedCall(c.hash, "removeDenomAdmin", nil)
}

// Reply creates a transaction invoking `reply` method of the contract.
// This transaction is signed and immediately sent to the network.
// The values returned are its hash, ValidUntilBlock value and error if any.
func (c *Contract) Reply(id *big.Int, success bool, details []byte) (util.Uint256, uint32, error) {
	return c.actor.SendCall(c.hash, "reply", id, success, details)
}

// ReplyTransaction creates a transaction invoking `reply` method of the contract.
// This transaction is signed, but not sent to the network, instead it's
// returned to the caller.
func (c *Contract) ReplyTransaction(id *big.Int, success bool, details []byte) (*transaction.Transaction, error) {
	return c.actor.MakeCall(c.hash, "reply", id, success, details)
}

// ReplyUnsigned creates a transaction invoking `reply` method of the contract.
// This transaction is not signed, it's simply returned to the caller.
// Any fields of it that do not affect fees can be changed (ValidUntilBlock,
// Nonce), fee values (NetworkFee, SystemFee) can be increased as well.
func (c *Contract) ReplyUnsigned(id *big.Int, success bool, details []byte) (*transaction.Transaction, error) {
	return c.actor.MakeUnsignedCall(c.hash, "reply", nil, id, success, details)
}

// SetDenomAdmin creates a transaction invoking `setDenomAdmin` method of the contract.
// This transaction is signed and immediately sent to the network.
// The values returned are its hash, ValidUntilBlock value and error if any.
func (c *Contract) SetDenomAdmin(admin util.Uint160) (util.Uint256, uint32, error) {
	return c.actor.SendCall(c.hash, "setDenomAdmin", admin)
}

// SetDenomAdminTransaction creates a transaction invoking `setDenomAdmin` method of the contract.
// This transaction is signed, but not sent to the network, instead it's
// returned to the caller.
func (c *Contract) SetDenomAdminTransaction(admin util.Uint160) (*transaction.Transaction, error) {
	return c.actor.MakeCall(c.hash, "setDenomAdmin", admin)
}

// SetDenomAdminUnsigned creates a transaction invoking `setDenomAdmin` method of the contract.
// This transaction is not signed, it's simply returned to the caller.
// Any fields of it that do not affect fees can be changed (ValidUntilBlock,
// Nonce), fee values (NetworkFee, SystemFee) can be increased as well.
func (c *Contract) SetDenomAdminUnsigned(admin util.Uint160) (*transaction.Transaction, error) {
	return c.actor.MakeUnsignedCall(c.hash, "setDenomAdmin", nil, admin)
}

// SetDenomMetadata creates a transaction invoking `setDenomMetadata` method of the contract.
// This transaction is signed and immediately sent to the network.
// The values returned are its hash, ValidUntilBlock value and error if any.
func (c *Contract) SetDenomMetadata(symbol string, decimals *big.Int, name string, description string, uri string) (util.Uint256, uint32, error) {
	return c.actor.SendCall(c.hash, "setDenomMetadata", symbol, decimals, name, description, uri)
}

// SetDenomMetadataTransaction creates a transaction invoking `setDenomMetadata` method of the contract.
// This transaction is signed, but not sent to the network, instead it's
// returned to the caller.
func (c *Contract) SetDenomMetadataTransaction(symbol string, decimals *big.Int, name string, description string, uri string) (*transaction.Transaction, error) {
	return c.actor.MakeCall(c.hash, "setDenomMetadata", symbol, decimals, name, description, uri)
}

// SetDenomMetadataUnsigned creates a transaction invoking `setDenomMetadata` method of the contract.
// This transaction is not signed, it's simply returned to the caller.
// Any fields of it that do not affect fees can be changed (ValidUntilBlock,
// Nonce), fee values (NetworkFee, SystemFee) can be increased as well.
func (c *Contract) SetDenomMetadataUnsigned(symbol string, decimals *big.Int, name string, description string, uri string) (*transaction.Transaction, error) {
	return c.actor.MakeUnsignedCall(c.hash, "setDenomMetadata", nil, symbol, decimals, name, description, uri)
}

// SetManager creates a transaction invoking `setManager` method of the contract.
// This transaction is signed and immediately sent to the network.
// The values returned are its hash, ValidUntilBlock value and error if any.
func (c *Contract) SetManager(manager util.Uint160) (util.Uint256, uint32, error) {
	return c.actor.SendCall(c.hash, "setManager", manager)
}

// SetManagerTransaction creates a transaction invoking `setManager` method of the contract.
// This transaction is signed, but not sent to the network, instead it's
// returned to the caller.
func (c *Contract) SetManagerTransaction(manager util.Uint160) (*transaction.Transaction, error) {
	return c.actor.MakeCall(c.hash, "setManager", manager)
}

// SetManagerUnsigned creates a transaction invoking `setManager` method of the contract.
// This transaction is not signed, it's simply returned to the caller.
// Any fields of it that do not affect fees can be changed (ValidUntilBlock,
// Nonce), fee values (NetworkFee, SystemFee) can be increased as well.
func (c *Contract) SetManagerUnsigned(manager util.Uint160) (*transaction.Transaction, error) {
	return c.actor.MakeUnsignedCall(c.hash, "setManager", nil, manager)
}

// Update creates a transaction invoking `update` method of the contract.
// This transaction is signed and immediately sent to the network.
// The values returned are its hash, ValidUntilBlock value and error if any.
func (c *Contract) Update(nefFile []byte, manifest []byte, data any) (util.Uint256, uint32, error) {
	return c.actor.SendCall(c.hash, "update", nefFile, manifest, data)
}

// UpdateTransaction creates a transaction invoking `update` method of the contract.
// This transaction is signed, but not sent to the network, instead it's
// returned to the caller.
func (c *Contract) UpdateTransaction(nefFile []byte, manifest []byte, data any) (*transaction.Transaction, error) {
	return c.actor.MakeCall(c.hash, "update", nefFile, manifest, data)
}

// UpdateUnsigned creates a transaction invoking `update` method of the contract.
// This transaction is not signed, it's simply returned to the caller.
// Any fields of it that do not affect fees can be changed (ValidUntilBlock,
// Nonce), fee values (NetworkFee, SystemFee) can be increased as well.
func (c *Contract) UpdateUnsigned(nefFile []byte, manifest []byte, data any) (*transaction.Transaction, error) {
	return c.actor.MakeUnsignedCall(c.hash, "update", nil, nefFile, manifest, data)
}

// itemToFactoryDenomUnit converts stack item into *FactoryDenomUnit.
func itemToFactoryDenomUnit(item stackitem.Item, err error) (*FactoryDenomUnit, error) {
	if err != nil {
		return nil, err
	}
	var res = new(FactoryDenomUnit)
	err = res.FromStackItem(item)
	return res, err
}

// FromStackItem retrieves fields of FactoryDenomUnit from the given
// [stackitem.Item] or returns an error if it's not possible to do to so.
func (res *FactoryDenomUnit) FromStackItem(item stackitem.Item) error {
	arr, ok := item.Value().([]stackitem.Item)
	if !ok {
		return errors.New("not an array")
	}
	if len(arr) != 3 {
		return errors.New("wrong number of structure elements")
	}

	var (
		index = -1
		err error
	)
	index++
	res.Denom, err = func (item stackitem.Item) (string, error) {
		b, err := item.TryBytes()
		if err != nil {
			return "", err
		}
		if !utf8.Valid(b) {
			return "", errors.New("not a UTF-8 string")
		}
		return string(b), nil
	} (arr[index])
	if err != nil {
		return fmt.Errorf("field Denom: %w", err)
	}

	index++
	res.Exponent, err = arr[index].TryInteger()
	if err != nil {
		return fmt.Errorf("field Exponent: %w", err)
	}

	index++
	res.Aliases, err = func (item stackitem.Item) ([]string, error) {
		arr, ok := item.Value().([]stackitem.Item)
		if !ok {
			return nil, errors.New("not an array")
		}
		res := make([]string, len(arr))
		for i := range res {
			res[i], err = func (item stackitem.Item) (string, error) {
				b, err := item.TryBytes()
				if err != nil {
					return "", err
				}
				if !utf8.Valid(b) {
					return "", errors.New("not a UTF-8 string")
				}
				return string(b), nil
			} (arr[i])
			if err != nil {
				return nil, fmt.Errorf("item %d: %w", i, err)
			}
		}
		return res, nil
	} (arr[index])
	if err != nil {
		return fmt.Errorf("field Aliases: %w", err)
	}

	return nil
}

// itemToFactoryMetadata converts stack item into *FactoryMetadata.
func itemToFactoryMetadata(item stackitem.Item, err error) (*FactoryMetadata, error) {
	if err != nil {
		return nil, err
	}
	var res = new(FactoryMetadata)
	err = res.FromStackItem(item)
	return res, err
}

// FromStackItem retrieves fields of FactoryMetadata from the given
// [stackitem.Item] or returns an error if it's not possible to do to so.
func (res *FactoryMetadata) FromStackItem(item stackitem.Item) error {
	arr, ok := item.Value().([]stackitem.Item)
	if !ok {
		return errors.New("not an array")
	}
	if len(arr) != 7 {
		return errors.New("wrong number of structure elements")
	}

	var (
		index = -1
		err error
	)
	index++
	res.Description, err = func (item stackitem.Item) (string, error) {
		b, err := item.TryBytes()
		if err != nil {
			return "", err
		}
		if !utf8.Valid(b) {
			return "", errors.New("not a UTF-8 string")
		}
		return string(b), nil
	} (arr[index])
	if err != nil {
		return fmt.Errorf("field Description: %w", err)
	}

	index++
	res.DenomUnits, err = func (item stackitem.Item) ([]*FactoryDenomUnit, error) {
		arr, ok := item.Value().([]stackitem.Item)
		if !ok {
			return nil, errors.New("not an array")
		}
		res := make([]*FactoryDenomUnit, len(arr))
		for i := range res {
			res[i], err = itemToFactoryDenomUnit(arr[i], nil)
			if err != nil {
				return nil, fmt.Errorf("item %d: %w", i, err)
			}
		}
		return res, nil
	} (arr[index])
	if err != nil {
		return fmt.Errorf("field DenomUnits: %w", err)
	}

	index++
	res.Base, err = func (item stackitem.Item) (string, error) {
		b, err := item.TryBytes()
		if err != nil {
			return "", err
		}
		if !utf8.Valid(b) {
			return "", errors.New("not a UTF-8 string")
		}
		return string(b), nil
	} (arr[index])
	if err != nil {
		return fmt.Errorf("field Base: %w", err)
	}

	index++
	res.Display, err = func (item stackitem.Item) (string, error) {
		b, err := item.TryBytes()
		if err != nil {
			return "", err
		}
		if !utf8.Valid(b) {
			return "", errors.New("not a UTF-8 string")
		}
		return string(b), nil
	} (arr[index])
	if err != nil {
		return fmt.Errorf("field Display: %w", err)
	}

	index++
	res.Name, err = func (item stackitem.Item) (string, error) {
		b, err := item.TryBytes()
		if err != nil {
			return "", err
		}
		if !utf8.Valid(b) {
			return "", errors.New("not a UTF-8 string")
		}
		return string(b), nil
	} (arr[index])
	if err != nil {
		return fmt.Errorf("field Name: %w", err)
	}

	index++
	res.Symbol, err = func (item stackitem.Item) (string, error) {
		b, err := item.TryBytes()
		if err != nil {
			return "", err
		}
		if !utf8.Valid(b) {
			return "", errors.New("not a UTF-8 string")
		}
		return string(b), nil
	} (arr[index])
	if err != nil {
		return fmt.Errorf("field Symbol: %w", err)
	}

	index++
	res.URI, err = func (item stackitem.Item) (string, error) {
		b, err := item.TryBytes()
		if err != nil {
			return "", err
		}
		if !utf8.Valid(b) {
			return "", errors.New("not a UTF-8 string")
		}
		return string(b), nil
	} (arr[index])
	if err != nil {
		return fmt.Errorf("field URI: %w", err)
	}

	return nil
}

// itemToTokenfactoryBalance converts stack item into *TokenfactoryBalance.
func itemToTokenfactoryBalance(item stackitem.Item, err error) (*TokenfactoryBalance, error) {
	if err != nil {
		return nil, err
	}
	var res = new(TokenfactoryBalance)
	err = res.FromStackItem(item)
	return res, err
}

// FromStackItem retrieves fields of TokenfactoryBalance from the given
// [stackitem.Item] or returns an error if it's not possible to do to so.
func (res *TokenfactoryBalance) FromStackItem(item stackitem.Item) error {
	arr, ok := item.Value().([]stackitem.Item)
	if !ok {
		return errors.New("not an array")
	}
	if len(arr) != 2 {
		return errors.New("wrong number of structure elements")
	}

	var (
		index = -1
		err error
	)
	index++
	res.Recipient, err = func (item stackitem.Item) (util.Uint160, error) {
		b, err := item.TryBytes()
		if err != nil {
			return util.Uint160{}, err
		}
		u, err := util.Uint160DecodeBytesBE(b)
		if err != nil {
			return util.Uint160{}, err
		}
		return u, nil
	} (arr[index])
	if err != nil {
		return fmt.Errorf("field Recipient: %w", err)
	}

	index++
	res.Amount, err = arr[index].TryInteger()
	if err != nil {
		return fmt.Errorf("field Amount: %w", err)
	}

	return nil
}

// itemToTokenfactoryDenomInfo converts stack item into *TokenfactoryDenomInfo.
func itemToTokenfactoryDenomInfo(item stackitem.Item, err error) (*TokenfactoryDenomInfo, error) {
	if err != nil {
		return nil, err
	}
	var res = new(TokenfactoryDenomInfo)
	err = res.FromStackItem(item)
	return res, err
}

// FromStackItem retrieves fields of TokenfactoryDenomInfo from the given
// [stackitem.Item] or returns an error if it's not possible to do to so.
func (res *TokenfactoryDenomInfo) FromStackItem(item stackitem.Item) error {
	arr, ok := item.Value().([]stackitem.Item)
	if !ok {
		return errors.New("not an array")
	}
	if len(arr) != 4 {
		return errors.New("wrong number of structure elements")
	}

	var (
		index = -1
		err error
	)
	index++
	res.Denom, err = func (item stackitem.Item) (string, error) {
		b, err := item.TryBytes()
		if err != nil {
			return "", err
		}
		if !utf8.Valid(b) {
			return "", errors.New("not a UTF-8 string")
		}
		return string(b), nil
	} (arr[index])
	if err != nil {
		return fmt.Errorf("field Denom: %w", err)
	}

	index++
	res.Metadata, err = itemToFactoryMetadata(arr[index], nil)
	if err != nil {
		return fmt.Errorf("field Metadata: %w", err)
	}

	index++
	res.Minted, err = arr[index].TryInteger()
	if err != nil {
		return fmt.Errorf("field Minted: %w", err)
	}

	index++
	res.Burned, err = arr[index].TryInteger()
	if err != nil {
		return fmt.Errorf("field Burned: %w", err)
	}

	return nil
}

// itemToTokenfactorySettings converts stack item into *TokenfactorySettings.
func itemToTokenfactorySettings(item stackitem.Item, err error) (*TokenfactorySettings, error) {
	if err != nil {
		return nil, err
	}
	var res = new(TokenfactorySettings)
	err = res.FromStackItem(item)
	return res, err
}

// FromStackItem retrieves fields of TokenfactorySettings from the given
// [stackitem.Item] or returns an error if it's not possible to do to so.
func (res *TokenfactorySettings) FromStackItem(item stackitem.Item) error {
	arr, ok := item.Value().([]stackitem.Item)
	if !ok {
		return errors.New("not an array")
	}
	if len(arr) != 1 {
		return errors.New("wrong number of structure elements")
	}

	var (
		index = -1
		err error
	)
	index++
	res.Manager, err = func (item stackitem.Item) (util.Uint160, error) {
		b, err := item.TryBytes()
		if err != nil {
			return util.Uint160{}, err
		}
		u, err := util.Uint160DecodeBytesBE(b)
		if err != nil {
			return util.Uint160{}, err
		}
		return u, nil
	} (arr[index])
	if err != nil {
		return fmt.Errorf("field Manager: %w", err)
	}

	return nil
}

// DispatchEventsFromApplicationLog retrieves a set of all emitted events
// with "Dispatch" name from the provided [result.ApplicationLog].
func DispatchEventsFromApplicationLog(log *result.ApplicationLog) ([]*DispatchEvent, error) {
	if log == nil {
		return nil, errors.New("nil application log")
	}

	var res []*DispatchEvent
	for i, ex := range log.Executions {
		for j, e := range ex.Events {
			if e.Name != "Dispatch" {
				continue
			}
			event := new(DispatchEvent)
			err := event.FromStackItem(e.Item)
			if err != nil {
				return nil, fmt.Errorf("failed to deserialize DispatchEvent from stackitem (execution #%d, event #%d): %w", i, j, err)
			}
			res = append(res, event)
		}
	}

	return res, nil
}

// FromStackItem converts provided [stackitem.Array] to DispatchEvent or
// returns an error if it's not possible to do to so.
func (e *DispatchEvent) FromStackItem(item *stackitem.Array) error {
	if item == nil {
		return errors.New("nil item")
	}
	arr, ok := item.Value().([]stackitem.Item)
	if !ok {
		return errors.New("not an array")
	}
	if len(arr) != 4 {
		return errors.New("wrong number of structure elements")
	}

	var (
		index = -1
		err error
	)
	index++
	e.ReplyID, err = arr[index].TryInteger()
	if err != nil {
		return fmt.Errorf("field ReplyID: %w", err)
	}

	index++
	e.ReplyAlways, err = arr[index].TryBool()
	if err != nil {
		return fmt.Errorf("field ReplyAlways: %w", err)
	}

	index++
	e.TypeURL, err = func (item stackitem.Item) (string, error) {
		b, err := item.TryBytes()
		if err != nil {
			return "", err
		}
		if !utf8.Valid(b) {
			return "", errors.New("not a UTF-8 string")
		}
		return string(b), nil
	} (arr[index])
	if err != nil {
		return fmt.Errorf("field TypeURL: %w", err)
	}

	index++
	e.Value, err = arr[index].TryBytes()
	if err != nil {
		return fmt.Errorf("field Value: %w", err)
	}

	return nil
}
