// Package utils provides terminal and path helpers shared by Pagelock
// commands.
package utils
