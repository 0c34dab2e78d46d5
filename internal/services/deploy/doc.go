// Package deploy runs an ordered deployment plan against a chain.
//
// A Plan is a list of typed steps. Each step names a compiled artifact and its
// constructor arguments; an argument is either a literal value or a reference
// to the address produced by an earlier step. NewPlan rejects references that
// point forward or to unknown steps, so a valid plan can always be executed
// strictly in order.
//
// Service.Run executes the steps one at a time, waiting for each creation to
// be mined before starting the next. The first failure stops the run: later
// steps are never sent, earlier contracts stay deployed, and the error is
// returned with the failing step's label attached.
//
// Built-in plans:
//
//   - SupplyChainPlan: UsersContract, ProductsContract, then
//     SupplyChain(users, products).
//   - CombinedPlan: one contract constructed with a manufacturer name and a
//     contact email.
package deploy
