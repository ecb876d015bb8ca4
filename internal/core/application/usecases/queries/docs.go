// Package queries contains read-only operations over orders. Queries never
// change state: the overview and preview run the status resolver, the action
// authorizer and the financial calculator over an order, and the listing and
// revenue queries read the stored totals snapshot with plain SQL.
package queries
