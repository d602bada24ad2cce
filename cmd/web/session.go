package main

// authenticatedSessionKey marks a session that passed the admin sign-in.
const authenticatedSessionKey = "authenticated"
