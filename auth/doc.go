/*
Package auth registers and authenticates rango users with a username and password.

Passwords are hashed with bcrypt before they are stored.
Service authenticates a User by comparing a submitted password against that hash;
the HTTP layer then records the User's ID in their session.
*/
package auth
