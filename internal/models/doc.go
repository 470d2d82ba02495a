// Package models defines the core domain models for Divvy.
//
// # Models
//
//   - User: a registered account; owns its credential, referenced everywhere
//     else by ID only
//   - Group: a named member set; every authorization decision for a group's
//     expenses is derived from this set
//   - Expense: a payment logged against a group by one of its members
//
// # Design Principles
//
//  1. **Reference by identifier**: Group holds User IDs, Expense holds Group
//     and User IDs. No embedded copies, no circular pointers; readers resolve
//     references explicitly (see UserSummary).
//  2. **Create-only lifecycle**: in the current scope users, groups and
//     expenses are never updated or deleted once created. Membership checks
//     happen at write time and are not re-evaluated retroactively.
//  3. **No credential leakage**: anything returned to a caller uses
//     UserSummary, which carries no password material.
package models
