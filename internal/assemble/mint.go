package assemble

import (
	"crypto/sha1"
	"encoding/hex"

	"github.com/geoknoesis/rdf-go/rdf"
	"github.com/google/uuid"

	"github.com/marfox/qs2rdf/internal/vocab"
)

// mintStatementNode returns a fresh statement node for the subject. The node
// is random per call: multiple statements can share subject and property, so
// the identifier cannot be derived from content.
func mintStatementNode(subject string) rdf.IRI {
	return rdf.IRI{Value: vocab.Statement + subject + "-" + uuid.NewString()}
}

// mintReferenceNode derives a reference node from the canonical form of the
// statement's main value. The digest is computed fresh on every call, so the
// same value always yields the same node regardless of line order.
func mintReferenceNode(mainValue rdf.Term) rdf.IRI {
	sum := sha1.Sum([]byte(mainValue.String()))
	return rdf.IRI{Value: vocab.Reference + hex.EncodeToString(sum[:])}
}
