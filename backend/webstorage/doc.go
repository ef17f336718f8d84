// Package webstorage adapts the browser's Web Storage objects (localStorage and
// sessionStorage) to backend.Backend through syscall/js.
//
// The adapter is only built for GOOS=js GOARCH=wasm. JavaScript exceptions
// thrown by the storage object (QuotaExceededError when the quota is full,
// SecurityError when storage is disabled) are recovered and returned as *Error.
package webstorage
