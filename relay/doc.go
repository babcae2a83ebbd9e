/*
Package relay implements off-chain part of the Token Factory contract.

The contract can't call the token factory chain itself, it emits Dispatch
notifications instead. Relay reads application logs of the Neo chain, executes
dispatched messages on the token factory chain and calls `reply` method of the
contract for the messages requesting it. Replies are signed by Alphabet nodes,
so the relay is run by them.
*/
package relay
