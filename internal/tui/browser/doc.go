// Package browser is a full-screen viewer for recorded result pages. It
// shows one page of rows with the pagination control underneath and loads
// the neighbouring page when a pagination button is activated.
package browser
