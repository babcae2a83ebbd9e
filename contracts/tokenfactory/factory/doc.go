/*
Package factory builds messages for token factory modules.

Five token factory dialects are supported, see [Variant]. Every builder
returns a [Message] which is a protobuf Any: message type URL and binary
protobuf body. Bodies are encoded without reflection, so the package can be
used both in the Token Factory contract and in regular Go code.

Passing unsupported variant to a builder is a programming error, builders
panic in this case.
*/
package factory
