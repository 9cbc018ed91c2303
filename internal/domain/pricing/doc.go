// Package pricing holds the side-effect free pricing engine: rule matching, the apply and
// simulate evaluators, the bulk and psychological transformers and the tax overlay.
//
// Everything here is pure. Loading products and rules, committing prices and writing the
// audit trail happen in the usecase layer.
package pricing
