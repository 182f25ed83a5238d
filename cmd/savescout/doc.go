// Command savescout discovers installed games and locates their save data.
package main
