package ledger

import "fmt"

// Proof is a simulated payment proof for a recorded transaction. In a real
// chain this would be a Merkle inclusion proof or a signed receipt; here it
// carries enough structure for external inspection tooling to verify what
// the simulator knows about the transaction.
type Proof struct {
	TransactionID string   // the proven transaction id
	Confirmed     bool     // whether the transaction is included in a block
	BlockHeight   int64    // confirming block height; meaningful only when Confirmed
	BlockHash     string   // confirming block hash; empty while unconfirmed
	Outputs       []Output // the transaction's declared outputs
	Confirmations int64    // currentHeight - blockHeight + 1; zero while unconfirmed
	MerkleProof   string   // simulated inclusion proof tag; empty while unconfirmed
}

// merkleProofTag builds the simulated inclusion proof marker for a confirmed
// transaction.
func merkleProofTag(txID string, blockHeight int64) string {
	return fmt.Sprintf("merkle_proof_for_tx_%s_in_block_%d", txID, blockHeight)
}
