// Package bridge is the Go counterpart to the flat-struct ABI bridge
// described in spec.md §6: a host collaborator that marshals a byte/float64
// event payload to and from the core engine and holds the one persistent
// state cell the engine itself never keeps.
//
// Session mirrors FMRT_Step/FMRT_Reset: it owns a single StructuralState
// behind a mutex, validates the incoming Event at the bridge's own,
// stricter layer (distinct from and prior to the engine's event
// validation), and updates its state only when the step's status is one
// the bridge is willing to let escape as non-fatal.
//
// Registry extends the original's single global cell to multiple
// independently tracked organisms, each addressed by a uuid.UUID session
// id — spec.md §6 describes one persistent cell; nothing in its Non-goals
// forbids a host collaborator from tracking more than one.
package bridge
