/*
Package handler serves rango's pages.

Each page is a method on [*Handler] rendering one of the templates embedded in package template.
[*Handler.Routes] registers them all on a [*router.Router]:

	/                             index
	/about/                       about
	/category/{slug}/             show a category
	/add_category/                add a category (authenticated)
	/category/{slug}/add_page/    add a page to a category (authenticated)
	/register/                    create an account
	/login/                       log in
	/logout/                      log out (authenticated)
	/restricted/                  restricted page (authenticated)
	/metrics                      Prometheus exposition
*/
package handler
