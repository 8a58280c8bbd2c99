// Package tablepager provides page-number pagination for in-memory,
// table-like collections.
//
// Overview
//
// A Pager owns an ordered collection of items, a page size and the current
// page. It computes the visible window, the compressed sequence of page
// buttons and a caption range, and reports every change of the visible set
// to a Sink. The Sink is the only place where presentation happens: hiding
// table rows, mounting cards, printing lines.
//
// Key concepts
//   - Pager: windowing state and navigation (GoToPage, Next, Previous,
//     Refresh).
//   - Source: where items come from. Sources are re-read on Refresh, so a
//     collaborator that filters the underlying collection calls Refresh
//     itself.
//   - Sink: receives Transition values (hidden and shown indices).
//   - PageNumbers: "1 … 9 10 11 … 20" style compression of page buttons.
//   - PageRequest, PageToken: the same window arithmetic for server-side
//     OFFSET/LIMIT queries through GORM.
//
// A Pager is not safe for concurrent use; it is meant to be driven from a
// single event loop.
package tablepager
