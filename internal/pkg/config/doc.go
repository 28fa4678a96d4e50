// Package config provides functionality for loading and managing application configuration.
//
// Settings are read from a YAML file (or taken from Default), validated with
// go-playground/validator and handed to the logger factory and the algorithm facade.
package config
