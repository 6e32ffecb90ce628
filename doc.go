// Package papertrade implements a single-user paper-trading account: a cash
// balance and stock holdings priced against market quotes.
//
// The core is the Portfolio, a small accounting engine that mutates balance
// and holdings under deposit, withdraw, buy and sell operations while
// maintaining a blended average cost basis per position. A PerformanceReport
// combines an immutable Snapshot of the portfolio with live quotes from a
// QuoteProvider to compute unrealized gains and percentage returns.
//
// Persistence, quote retrieval and advisory generation are collaborators
// behind small interfaces (Store, QuoteProvider, GainersProvider) so the
// accounting engine stays pure and testable.
package papertrade
