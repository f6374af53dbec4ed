// Package pager implements token-based pagination over the list endpoints of
// the GenAI API (models, files, tuning jobs, batch jobs, cached contents).
//
// A list response carries one bounded page of items plus an opaque
// continuation token. The pager keeps the current page, threads the token
// into the next request, and exposes both whole-page access and item-wise
// iteration that crosses page boundaries transparently.
//
// Example usage:
//
//	p, err := pager.NewPager(pager.CollectionModels, listModels, firstResp, pager.RequestOptions{"page_size": 5})
//	for model, err := range p.All() {
//		if err != nil {
//			return err
//		}
//		fmt.Println(model.Name)
//	}
//
// Two pager flavors share one state machine:
//   - Pager issues blocking requests (the calling goroutine waits).
//   - AsyncPager issues context-aware requests and suspends only at the
//     page boundary, never mid-page.
//
// The pager owns no retries, caching, or cancellation; transport concerns
// belong to the request function it is given. A failed fetch leaves the
// pager on its current page, so the caller can retry safely.
package pager
