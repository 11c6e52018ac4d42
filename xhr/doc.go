// Package xhr is a small asynchronous HTTP request wrapper.
//
// A request is started with Client.Ajax and reports back through a single
// callback invocation carrying the status code, the decoded response and the
// Request handle. Transport failures are not returned as errors: the status
// is nil and the response is one of the Abort, Timeout or Error strings.
//
//	xhr.AjaxURL(ctx, "/api/items", func(status *int, resp any, r *xhr.Request) {
//		if status == nil {
//			// resp is xhr.Abort, xhr.Timeout or xhr.Error
//			return
//		}
//		fmt.Println(*status, resp)
//	})
package xhr
