package users

import "github.com/on-the-ground/tagless_go/effects/monad"

// FetchUserInformation combines a user's profile with their orders.
//
// Profile and orders are independent lookups and may run concurrently, depending on F.
// Any failure is logged once through env and then returned unchanged.
func FetchUserInformation[F Env[F]](env F, id UserID) monad.Kind[F, UserInformation] {
	both := monad.Zip(env.ProfileFor(id), env.OrdersFor(id))
	info := monad.Map(both, func(p monad.Pair[UserProfile, []Order]) UserInformation {
		return NewUserInformation(p.First.Name, p.Second)
	})
	return monad.OnError(info, env.Error)
}
