// Package users holds the user-information domain: its entities, the capabilities
// an interpreter must provide, and FetchUserInformation, which is written against
// those capabilities only.
//
// The same FetchUserInformation value runs under users/live, where every capability
// call is an asynchronous task against real services, and under users/userstest,
// where the interpreter is an immutable Fixture threaded through each step.
package users
