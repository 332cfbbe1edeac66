// Copyright (c) 2026 Casavia. All rights reserved.
// Author: n.varela.dev@gmail.com

/*
Package schema centralizes the physical database layout as typed column-name
definitions.

Every table is described by a struct whose fields hold the literal column
names. Query builders interpolate ONLY these values into SQL text, which makes
them the fixed allow-list for dynamic filters: a field name that does not come
from this package never reaches a query string, while row values always travel
as bind parameters.

Conventions:

  - One file per table, named after the table.
  - A Columns() method lists the standard scan order for full-row reads.
*/
package schema
