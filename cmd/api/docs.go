// Package main runs the movie catalog HTTP API
//
// @title Movies API
// @version 1.0
// @description CRUD service for a catalog of movies, directors and genres.
// @description A movie may reference one director and one genre by id.
//
// @BasePath /
// @schemes http https
//
// @tag.name Movies
// @tag.description Movies, filterable by director and genre
//
// @tag.name Directors
// @tag.description Directors referenced by movies
//
// @tag.name Genres
// @tag.description Genres referenced by movies
//
// @tag.name System
// @tag.description Health checks
package main

//go:generate swag init -g cmd/api/docs.go -d ../../ -o ../../docs
