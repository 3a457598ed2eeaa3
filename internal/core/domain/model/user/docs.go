// Package user provides the account aggregate for the pet adoption system.
//
// The package includes:
//   - User: The aggregate root covering identity, login credential, role, and contact details
//   - Role: A value object distinguishing regular users from the admin
//
// Key business rules:
//   - Email addresses are unique and required for login
//   - The password credential is an opaque hash; plaintext never enters the domain
//   - Roles are fixed at creation, but admin checks re-read the stored role
//     rather than trusting token claims
package user
