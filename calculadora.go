package calculadora

import "fmt"

//GreetingWord is the fixed word Greet puts in front of the name.
const GreetingWord = "Olá"

//Add returns the sum of a and b.
func Add(a, b int) int {
	return a + b
}

//Multiply returns the product of a and b.
func Multiply(a, b int) int {
	return a * b
}

//Greet returns a personalized greeting. An empty name still gets the
//template: "Olá, !".
func Greet(name string) string {
	return fmt.Sprintf("%s, %s!", GreetingWord, name)
}
