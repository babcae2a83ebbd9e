/*
Package tokenfactory implements Token Factory contract which manages a single
denom hosted by the token factory module of an external chain.

The contract doesn't hold any balances itself. Every instruction for the token
factory (denom creation, mint, burn, admin change, metadata update) and every
bank transfer of the minted tokens is published as a Dispatch notification.
Alphabet nodes relay dispatched messages to the token factory chain and, if
reply is requested, call Reply method with the result.

On deployment, the contract creates factory/<contract address>/<symbol> denom,
sets its metadata and, if initial balances are provided, mints their sum at
once. Initial balances are paid out when the mint is confirmed.

Mints requested by the manager are correlated with replies by ids starting
from 1_000_000, each mint gets its own id. Reply id 0 is reserved for the
aggregate mint of initial balances. Burns use ids starting from 2^62 and are
accounted only after confirmation.

# Contract notifications

Dispatch notification. This notification carries a protobuf Any message for
the token factory chain. replyID and replyAlways tell the relay whether and
how to call Reply method after the message execution.

	Dispatch:
	  - name: replyID
	    type: Integer
	  - name: replyAlways
	    type: Boolean
	  - name: typeURL
	    type: String
	  - name: value
	    type: ByteArray

# Contract storage model

	| Key                   | Value                       |
	|-----------------------|-----------------------------|
	| v                     | contract version            |
	| m                     | manager script hash         |
	| f                     | token factory variant       |
	| d                     | denom                       |
	| x                     | serialized denom metadata   |
	| s                     | serialized minted/burned    |
	| c, k                  | next mint and burn reply id |
	| p + 8-byte reply id   | serialized pending mint     |
	| q + 8-byte reply id   | serialized pending burn     |
	| i + 8-byte index      | serialized initial balance  |
	| l                     | number of initial balances  |
*/
package tokenfactory
