/*
	Project: Shule - typed access to school records (students, classes, assignments, grades, attendance)
	Target: École secondaires
*/
package shule

/*
Layout:
	core/record      - record protocol, reconciliation of batch outcomes, failure policies
	core/<entity>    - typed models, field mappers & services
	core/dashboard   - school overview
	storage          - backend selection: in-memory mock store or remote HTTP client
	apps/api         - serves the record protocol over the mock store
	apps/admin       - roster import, attendance marking & summary from the terminal

TODO: the record protocol carries no paging; the remote backend returns whole tables.
*/
