// Package entitlement models customer subscriptions and the daily free
// order allowance they grant.
package entitlement
