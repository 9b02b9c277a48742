/*
Package ports defines the interfaces between the cmdform core and its adapters.

# Key Interfaces

  - FormEngine: resolves paths and builds forms; consumed by HTTP and MCP adapters.
  - TreeLoader: provides the static command tree (file, cobra, code).
  - PageCache: stores rendered pages (memory, Redis).
*/
package ports
